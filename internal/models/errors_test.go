package models

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAPIErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        *APIError
		wantStatus int
		wantMsg    string
	}{
		{"Not Found", NewNotFoundError(), fiber.StatusNotFound, MsgNotFound},
		{"Bad Request", NewBadRequestError(), fiber.StatusBadRequest, MsgBadRequest},
		{"Missing Info", NewMissingInfoError(), fiber.StatusBadRequest, MsgMissingInfo},
		{"Duplicate Username", NewDuplicateUsernameError(), fiber.StatusBadRequest, MsgDuplicateUsername},
		{"Invalid Method", NewInvalidMethodError(), fiber.StatusMethodNotAllowed, MsgInvalidMethod},
		{"Internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError, MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantMsg, tt.err.Msg)
		})
	}
}

func TestAPIErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), MsgInternal)
	assert.Contains(t, err.Error(), "connection refused")

	// Errors without a cause render just the fixed message.
	assert.Equal(t, MsgNotFound, NewNotFoundError().Error())
}
