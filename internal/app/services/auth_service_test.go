package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/enrollment/internal/pkg/apperrors"
	"github.com/okan/enrollment/internal/pkg/auth"
)

func newLoginService() (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    30 * time.Minute,
		TokenIssuer: "enrollment.test",
	})
	return NewAuthService("admin", "password", jwtService, zerolog.Nop()), jwtService
}

func TestLogin_IssuesValidToken(t *testing.T) {
	t.Parallel()

	svc, jwtService := newLoginService()

	token, err := svc.Login("admin", "password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "wrong username", username: "root", password: "password"},
		{name: "both empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newLoginService()
			token, err := svc.Login(tt.username, tt.password)

			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}
