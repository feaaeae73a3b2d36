package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Not found", NewNotFoundError("User", 7), fiber.StatusNotFound},
		{"Validation", NewValidationError("bad input"), fiber.StatusBadRequest},
		{"Invalid credential", NewInvalidCredentialError(), fiber.StatusUnauthorized},
		{"Unauthorized action", NewUnauthorizedError("nope"), fiber.StatusForbidden},
		{"Self like", NewSelfLikeError(), fiber.StatusForbidden},
		{"Not liked", NewNotLikedError(), fiber.StatusConflict},
		{"Duplicate username", NewDuplicateUsernameError("warbler"), fiber.StatusConflict},
		{"Internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"Plain error", errors.New("boom"), fiber.StatusInternalServerError},
		{"Wrapped app error", fmt.Errorf("saving: %w", NewNotFoundError("Message", 3)), fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForError(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}
