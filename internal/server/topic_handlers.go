package server

import (
	"tribune/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTopics handles GET /api/topics
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.topicRepo.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"topics": topics})
}

// CreateTopic handles POST /api/topics
func (s *Server) CreateTopic(c *fiber.Ctx) error {
	var topic models.Topic
	if err := c.BodyParser(&topic); err != nil {
		return models.NewBadRequestError()
	}

	if err := s.topicRepo.Create(c.UserContext(), &topic); err != nil {
		return err
	}

	// The created topic is returned as a one-element array.
	return c.Status(fiber.StatusCreated).JSON([]models.Topic{topic})
}
