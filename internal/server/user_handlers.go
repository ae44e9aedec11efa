package server

import (
	"tribune/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetUserByUsername handles GET /api/users/:username
func (s *Server) GetUserByUsername(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"user": []models.User{*user}})
}

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return models.NewBadRequestError()
	}

	if err := s.userRepo.Create(c.UserContext(), &user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": []models.User{user}})
}
