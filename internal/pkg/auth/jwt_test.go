package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/enrollment/internal/pkg/apperrors"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-jwt-secret",
		TokenExp:    exp,
		TokenIssuer: "enrollment.test",
	})
}

func TestJWTService_GenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(30 * time.Minute)

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "enrollment.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(30 * time.Minute)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: apperrors.ErrTokenMissing},
		{name: "garbage", token: "not-a-token", want: apperrors.ErrTokenInvalid},
		{name: "malformed payload", token: "a.b.c", want: apperrors.ErrTokenInvalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := newTestJWTService(30 * time.Minute).GenerateToken("admin")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    30 * time.Minute,
		TokenIssuer: "enrollment.test",
	})

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix stripped", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token accepted", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrTokenMissing)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
