package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAdminRouter() *gin.Engine {
	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(NewAdminMiddleware("admin", "password").LocalBasicAuth())
	admin.POST("/seed", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestLocalBasicAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		username   string
		password   string
		noAuth     bool
		wantStatus int
	}{
		{
			name:       "loopback with valid credentials",
			remoteAddr: "127.0.0.1:54321",
			username:   "admin",
			password:   "password",
			wantStatus: http.StatusOK,
		},
		{
			name:       "ipv6 loopback",
			remoteAddr: "[::1]:54321",
			username:   "admin",
			password:   "password",
			wantStatus: http.StatusOK,
		},
		{
			name:       "remote caller rejected before credential check",
			remoteAddr: "192.0.2.1:54321",
			username:   "admin",
			password:   "password",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "loopback without credentials",
			remoteAddr: "127.0.0.1:54321",
			noAuth:     true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "loopback with wrong password",
			remoteAddr: "127.0.0.1:54321",
			username:   "admin",
			password:   "wrong",
			wantStatus: http.StatusUnauthorized,
		},
	}

	router := newAdminRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
			req.RemoteAddr = tt.remoteAddr
			if !tt.noAuth {
				req.SetBasicAuth(tt.username, tt.password)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestLocalBasicAuth_ForwardedHeaderCannotVouch(t *testing.T) {
	t.Parallel()

	router := newAdminRouter()

	req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
	req.RemoteAddr = "192.0.2.1:54321"
	req.Header.Set("X-Forwarded-For", "127.0.0.1")
	req.SetBasicAuth("admin", "password")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"permission denied"}`, w.Body.String())
}
