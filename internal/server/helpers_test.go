package server

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"tribune/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHandlerApp builds a bare app routed through the central error handler,
// for exercising individual handlers against mocked repositories.
func newHandlerApp(s *Server) *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: s.ErrorHandler})
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, out))
}

// assertErrorEnvelope checks the uniform {"msg": ...} failure shape.
func assertErrorEnvelope(t *testing.T, resp *http.Response, status int, msg string) {
	t.Helper()

	assert.Equal(t, status, resp.StatusCode)
	var envelope models.ErrorResponse
	decodeBody(t, resp, &envelope)
	assert.Equal(t, msg, envelope.Msg)
}
