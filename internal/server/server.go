// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tribune/internal/cache"
	"tribune/internal/config"
	"tribune/internal/database"
	"tribune/internal/middleware"
	"tribune/internal/models"
	"tribune/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	topicRepo      repository.TopicRepository
	userRepo       repository.UserRepository
	articleRepo    repository.ArticleRepository
	commentRepo    repository.CommentRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisClient := cache.Connect(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	prom := middleware.InitMetrics("tribune-api")

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		topicRepo:      repository.NewTopicRepository(db),
		userRepo:       repository.NewUserRepository(db),
		articleRepo:    repository.NewArticleRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
	}, nil
}

// NewApp builds the Fiber app with the central error handler, middleware and
// routes attached.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Tribune API",
		ErrorHandler: s.ErrorHandler,
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	return app
}

// ErrorHandler maps every error escaping a handler onto the fixed status and
// message taxonomy. Handlers return typed errors instead of writing failure
// responses themselves, so the envelope is produced in exactly one place.
func (s *Server) ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= fiber.StatusInternalServerError {
			middleware.Logger.ErrorContext(c.UserContext(), "request failed",
				"method", c.Method(), "path", c.Path(), "error", err.Error())
		}
		return c.Status(apiErr.Status).JSON(models.ErrorResponse{Msg: apiErr.Msg})
	}

	// Fiber raises its own errors for unmatched paths (404) and for matched
	// paths hit with an unsupported method (405).
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Msg: models.MsgNotFound})
		case fiberErr.Code == fiber.StatusMethodNotAllowed:
			return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse{Msg: models.MsgInvalidMethod})
		case fiberErr.Code < fiber.StatusInternalServerError:
			return c.Status(fiberErr.Code).JSON(models.ErrorResponse{Msg: models.MsgBadRequest})
		}
	}

	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		"method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Msg: models.MsgInternal})
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into the user context
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs before anything that can short-circuit so browser
	// clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))

	// Distributed tracing
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Tribune Metrics Dashboard",
	}))

	// Topic routes
	topics := api.Group("/topics")
	topics.Get("/", s.GetTopics)
	topics.Post("/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_topic"), s.CreateTopic)

	// User routes
	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_user"), s.CreateUser)
	users.Get("/:username", s.GetUserByUsername)

	// Article routes. The specific /:article_id/comments route is registered
	// before the generic /:article_id routes.
	articles := api.Group("/articles")
	articles.Get("/", s.GetArticles)
	articles.Post("/", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_article"), s.CreateArticle)
	articles.Get("/:article_id/comments", s.GetArticleComments)
	articles.Get("/:article_id", s.GetArticle)
	articles.Patch("/:article_id", s.PatchArticleVotes)
	articles.Delete("/:article_id", s.DeleteArticle)
	articles.Post("/:article_id", middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.CreateComment)

	// Comment routes
	comments := api.Group("/comments")
	comments.Patch("/:comment_id", s.PatchCommentVotes)
	comments.Delete("/:comment_id", s.DeleteComment)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis only backs rate limiting, so its absence degrades rather
		// than fails readiness.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := s.NewApp()

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
