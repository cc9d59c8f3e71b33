// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okan/enrollment/internal/app/services"
	"github.com/okan/enrollment/internal/middleware"
	"github.com/okan/enrollment/internal/pkg/render"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges HTTP Basic credentials for a bearer token
// @Summary Obtain a bearer token
// @Description Compares the supplied Basic credentials against the configured admin account and returns a signed, time-limited token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Token issued"
// @Failure 401 {object} map[string]string "Missing or invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	username, password, ok := ctx.Request.BasicAuth()
	if !ok {
		ctx.Header("WWW-Authenticate", `Basic realm="login"`)
		render.Message(ctx, http.StatusUnauthorized, "basic auth credentials required")
		return
	}

	token, err := c.authService.Login(username, password)
	if err != nil {
		ctx.Header("WWW-Authenticate", `Basic realm="login"`)
		middleware.HandleAPIError(ctx, err)
		return
	}

	render.Token(ctx, http.StatusOK, token)
}
