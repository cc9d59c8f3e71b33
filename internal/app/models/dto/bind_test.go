package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeErr(t *testing.T, body string) error {
	t.Helper()

	var req CreateStudentRequest
	err := json.NewDecoder(strings.NewReader(body)).Decode(&req)
	require.Error(t, err)
	return err
}

func TestBindError(t *testing.T) {
	t.Parallel()

	t.Run("type mismatch names the field", func(t *testing.T) {
		t.Parallel()

		err := BindError(decodeErr(t, `{"student_id":"abc"}`))
		assert.Equal(t, "student_id", err.Field)
		assert.Equal(t, "student_id must be of type int64", err.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		err := BindError(decodeErr(t, ``))
		assert.Equal(t, "request body is required", err.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		err := BindError(decodeErr(t, `{"student_id":`))
		assert.Equal(t, "invalid request body", err.Message)
	})
}
