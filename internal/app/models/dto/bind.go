package dto

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/okan/enrollment/internal/pkg/apperrors"
)

// BindError converts a JSON binding failure into a ValidationError so the 400
// body names the offending field where the decoder knows it.
func BindError(err error) *apperrors.ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError(typeErr.Field,
			"%s must be of type %s", typeErr.Field, typeErr.Type.String())
	}
	if errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("", "request body is required")
	}
	return apperrors.NewValidationError("", "invalid request body")
}
