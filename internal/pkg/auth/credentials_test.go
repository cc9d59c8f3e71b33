package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/okan/enrollment/internal/pkg/apperrors"
)

func TestCheckCredentials_Plaintext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    string
		pass    string
		wantErr bool
	}{
		{name: "match", user: "admin", pass: "password"},
		{name: "wrong password", user: "admin", pass: "nope", wantErr: true},
		{name: "wrong username", user: "root", pass: "password", wantErr: true},
		{name: "both empty", user: "", pass: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckCredentials(tt.user, tt.pass, "admin", "password")
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckCredentials_BcryptHash(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, CheckCredentials("admin", "password", "admin", string(hash)))
	assert.ErrorIs(t, CheckCredentials("admin", "nope", "admin", string(hash)), apperrors.ErrInvalidCredentials)
}
