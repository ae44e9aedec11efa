package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Fixed client-facing messages. These are the only strings that ever leave
// the API on a failure; internal detail stays in logs.
const (
	MsgNotFound          = "NOT FOUND"
	MsgBadRequest        = "BAD REQUEST"
	MsgMissingInfo       = "MISSING INFO"
	MsgDuplicateUsername = "USERNAME ALREADY EXISTS"
	MsgInvalidMethod     = "INVALID METHOD"
	MsgInternal          = "INTERNAL SERVER ERROR"
)

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// APIError is a domain-typed failure carrying the HTTP status and fixed
// message it maps to.
type APIError struct {
	Status int
	Msg    string
	Err    error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a resource lookup that matched nothing.
func NewNotFoundError() *APIError {
	return &APIError{Status: fiber.StatusNotFound, Msg: MsgNotFound}
}

// NewBadRequestError reports a malformed identifier, filter, sort, limit or
// vote delta.
func NewBadRequestError() *APIError {
	return &APIError{Status: fiber.StatusBadRequest, Msg: MsgBadRequest}
}

// NewMissingInfoError reports a create payload with absent or empty required
// fields.
func NewMissingInfoError() *APIError {
	return &APIError{Status: fiber.StatusBadRequest, Msg: MsgMissingInfo}
}

// NewDuplicateUsernameError reports a user creation that collides with an
// existing username.
func NewDuplicateUsernameError() *APIError {
	return &APIError{Status: fiber.StatusBadRequest, Msg: MsgDuplicateUsername}
}

// NewInvalidMethodError reports an unsupported method on a matched route.
func NewInvalidMethodError() *APIError {
	return &APIError{Status: fiber.StatusMethodNotAllowed, Msg: MsgInvalidMethod}
}

// NewInternalError wraps an unclassified fault. The cause is kept for
// logging and never serialized.
func NewInternalError(err error) *APIError {
	return &APIError{Status: fiber.StatusInternalServerError, Msg: MsgInternal, Err: err}
}
