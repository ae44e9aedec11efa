package server

import (
	"strconv"

	"tribune/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a route parameter as a non-negative integer identifier.
// Malformed identifiers are rejected before any query runs; well-formed ids
// that match nothing are left to the storage layer's not-found path.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, models.NewBadRequestError()
	}
	return uint(id), nil
}

// parseVoteBody decodes an {"inc_votes": n} patch payload. A body that does
// not decode, or that carries no integer inc_votes, is a bad request.
func parseVoteBody(c *fiber.Ctx) (int, error) {
	var req struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := c.BodyParser(&req); err != nil || req.IncVotes == nil {
		return 0, models.NewBadRequestError()
	}
	return *req.IncVotes, nil
}
