package server

import (
	"time"

	"tribune/internal/middleware"
	"tribune/internal/models"
	"tribune/internal/query"

	"github.com/gofiber/fiber/v2"
)

// GetArticleComments handles GET /api/articles/:article_id/comments
func (s *Server) GetArticleComments(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	// A missing article is 404; an article with no comments is an empty list.
	exists, err := s.articleRepo.Exists(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError()
	}

	opts, err := query.ParseCommentList(
		c.Query("sort_by"),
		c.Query("order"),
		c.Query("limit"),
	)
	if err != nil {
		middleware.ListQueryRejections.WithLabelValues("article_comments").Inc()
		return err
	}

	comments, err := s.commentRepo.ListByArticle(c.UserContext(), id, opts)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id
func (s *Server) CreateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "article_id")
	if err != nil {
		return err
	}

	exists, err := s.articleRepo.Exists(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError()
	}

	var req struct {
		Author string `json:"author"`
		Body   string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewBadRequestError()
	}

	comment := models.Comment{
		Author:    req.Author,
		Body:      req.Body,
		ArticleID: id,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(c.UserContext(), &comment); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"newComment": []models.Comment{comment}})
}

// PatchCommentVotes handles PATCH /api/comments/:comment_id
func (s *Server) PatchCommentVotes(c *fiber.Ctx) error {
	id, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}

	delta, err := parseVoteBody(c)
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.IncrementVotes(c.UserContext(), id, delta)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"comment": []models.Comment{*comment}})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
