package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okan/enrollment/internal/pkg/apperrors"
	"github.com/okan/enrollment/internal/pkg/render"
)

// HandleAPIError converts service and repository errors into HTTP responses.
// Every error funnels through here, so no failure escapes a handler and the
// body always carries a message in the request's chosen format.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		render.Message(c, http.StatusNotFound, "student not found")
	case errors.Is(err, apperrors.ErrStudentAlreadyExists):
		render.Message(c, http.StatusConflict, "student ID already exists")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		render.Message(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, apperrors.ErrTokenMissing):
		render.Message(c, http.StatusUnauthorized, "token missing")
	case errors.Is(err, apperrors.ErrTokenExpired):
		render.Message(c, http.StatusUnauthorized, "token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		render.Message(c, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		render.Message(c, http.StatusForbidden, "permission denied")
	case errors.Is(err, apperrors.ErrValidationFailed):
		render.Message(c, http.StatusBadRequest, err.Error())
	default:
		render.Message(c, http.StatusInternalServerError, "internal server error")
	}
}
