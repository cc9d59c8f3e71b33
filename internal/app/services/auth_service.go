package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/okan/enrollment/internal/pkg/auth"
)

// AuthService exchanges admin credentials for bearer tokens.
type AuthService interface {
	Login(username, password string) (string, error)
}

type authService struct {
	adminUsername string
	adminPassword string
	jwtService    *auth.JWTService
	logger        zerolog.Logger
}

// NewAuthService creates a new auth service instance. The admin credentials
// are explicit constructor arguments rather than ambient globals.
func NewAuthService(adminUsername, adminPassword string, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		jwtService:    jwtService,
		logger:        logger,
	}
}

// Login verifies the supplied credentials against the configured admin
// account and issues a signed, time-limited token on success. There is no
// refresh mechanism; callers re-authenticate after expiry.
func (s *authService) Login(username, password string) (string, error) {
	if err := auth.CheckCredentials(username, password, s.adminUsername, s.adminPassword); err != nil {
		s.logger.Warn().Str("username", username).Msg("Login failed: invalid credentials")
		return "", err
	}

	token, err := s.jwtService.GenerateToken(username)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("Token issued")
	return token, nil
}
