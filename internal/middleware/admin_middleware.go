package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okan/enrollment/internal/pkg/apperrors"
	"github.com/okan/enrollment/internal/pkg/auth"
	"github.com/okan/enrollment/internal/pkg/render"
)

// AdminMiddleware gates the admin script endpoints: callers must connect from
// the loopback interface and present valid Basic admin credentials. This path
// never accepts bearer tokens.
type AdminMiddleware struct {
	adminUsername string
	adminPassword string
}

// NewAdminMiddleware creates a new AdminMiddleware
func NewAdminMiddleware(adminUsername, adminPassword string) *AdminMiddleware {
	return &AdminMiddleware{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// LocalBasicAuth enforces the loopback restriction and the Basic credentials.
// The loopback check uses the transport peer address, not forwarded-for
// headers, so a proxy cannot vouch for a remote caller.
func (m *AdminMiddleware) LocalBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		remoteIP := c.RemoteIP()
		ip := net.ParseIP(remoteIP)
		if ip == nil || !ip.IsLoopback() {
			HandleAPIError(c, apperrors.ErrPermissionDenied)
			c.Abort()
			return
		}

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			render.AbortMessage(c, http.StatusUnauthorized, "basic auth credentials required")
			return
		}

		if err := auth.CheckCredentials(username, password, m.adminUsername, m.adminPassword); err != nil {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			render.AbortMessage(c, http.StatusUnauthorized, "invalid credentials")
			return
		}

		c.Next()
	}
}
