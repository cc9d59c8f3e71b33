package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/okan/enrollment/internal/pkg/apperrors"
)

// CheckCredentials compares supplied Basic credentials against the configured
// admin username and password. The comparison is constant-time; when the
// configured password is a bcrypt hash the plaintext never needs to live in
// the environment.
func CheckCredentials(gotUser, gotPass, wantUser, wantPass string) error {
	userOK := subtle.ConstantTimeCompare([]byte(gotUser), []byte(wantUser)) == 1

	var passOK bool
	if strings.HasPrefix(wantPass, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(wantPass), []byte(gotPass)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(gotPass), []byte(wantPass)) == 1
	}

	if !userOK || !passOK {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
