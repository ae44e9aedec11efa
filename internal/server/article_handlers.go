package server

import (
	"time"

	"tribune/internal/middleware"
	"tribune/internal/models"
	"tribune/internal/query"

	"github.com/gofiber/fiber/v2"
)

// GetArticles handles GET /api/articles
func (s *Server) GetArticles(c *fiber.Ctx) error {
	opts, err := query.ParseArticleList(
		c.Query("sort_by"),
		c.Query("order"),
		c.Query("author"),
		c.Query("topic"),
		c.Query("limit"),
	)
	if err != nil {
		middleware.ListQueryRejections.WithLabelValues("articles").Inc()
		return err
	}

	articles, err := s.articleRepo.List(c.UserContext(), opts)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (s *Server) GetArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	article, err := s.articleRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"article": []models.Article{*article}})
}

// CreateArticle handles POST /api/articles
func (s *Server) CreateArticle(c *fiber.Ctx) error {
	var req struct {
		Title     string    `json:"title"`
		Topic     string    `json:"topic"`
		Author    string    `json:"author"`
		Body      string    `json:"body"`
		CreatedAt time.Time `json:"created_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewBadRequestError()
	}

	// created_at is part of the required payload; a zero value falls through
	// to the repository's missing-field check.
	article := models.Article{
		Title:     req.Title,
		Topic:     req.Topic,
		Author:    req.Author,
		Body:      req.Body,
		CreatedAt: req.CreatedAt,
	}
	if err := s.articleRepo.Create(c.UserContext(), &article); err != nil {
		return err
	}

	// The created article is returned as a one-element array.
	return c.Status(fiber.StatusCreated).JSON([]models.Article{article})
}

// PatchArticleVotes handles PATCH /api/articles/:article_id
func (s *Server) PatchArticleVotes(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	delta, err := parseVoteBody(c)
	if err != nil {
		return err
	}

	article, err := s.articleRepo.IncrementVotes(c.UserContext(), id, delta)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"article": []models.Article{*article}})
}

// DeleteArticle handles DELETE /api/articles/:article_id
func (s *Server) DeleteArticle(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	if err := s.articleRepo.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
