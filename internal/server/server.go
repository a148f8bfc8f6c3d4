// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"healthhub/internal/config"
	"healthhub/internal/database"
	"healthhub/internal/middleware"
	"healthhub/internal/models"
	"healthhub/internal/repository"
	"healthhub/internal/service"
	"healthhub/internal/validation"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	validator      *validation.Validator

	userRepo        repository.UserRepository
	ventureRepo     repository.VentureRepository
	applicationRepo repository.ApplicationRepository
	programRepo     repository.ProgramRepository
	milestoneRepo   repository.MilestoneRepository
	matchRepo       repository.MatchRepository
	messageRepo     repository.MessageRepository
	resourceRepo    repository.ResourceRepository

	matchService       *service.MatchService
	applicationService *service.ApplicationService
	messageService     *service.MessageService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	server := &Server{
		config:          cfg,
		db:              db,
		promMiddleware:  middleware.InitMetrics("healthhub-api"),
		validator:       validation.NewValidator(),
		userRepo:        repository.NewUserRepository(db),
		ventureRepo:     repository.NewVentureRepository(db),
		applicationRepo: repository.NewApplicationRepository(db),
		programRepo:     repository.NewProgramRepository(db),
		milestoneRepo:   repository.NewMilestoneRepository(db),
		matchRepo:       repository.NewMatchRepository(db),
		messageRepo:     repository.NewMessageRepository(db),
		resourceRepo:    repository.NewResourceRepository(db),
	}
	server.matchService = service.NewMatchService(server.matchRepo, server.userRepo)
	server.applicationService = service.NewApplicationService(server.applicationRepo, server.ventureRepo, server.programRepo)
	server.messageService = service.NewMessageService(server.messageRepo, server.userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for log correlation
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.Welcome)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)

	// Public program catalog
	publicPrograms := api.Group("/programs")
	publicPrograms.Get("/", s.GetPrograms)
	publicPrograms.Get("/:id", s.GetProgram)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// User routes
	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Get("/mentors", s.GetMentors)
	users.Get("/", s.AdminRequired(), s.GetAllUsers)
	users.Put("/:id/reset-password", s.AdminRequired(), s.ResetUserPassword)
	users.Get("/:id", s.GetUser)

	// Venture routes
	ventures := protected.Group("/ventures")
	ventures.Post("/", s.CreateVenture)
	ventures.Get("/", s.GetMyVentures)
	ventures.Put("/:id", s.UpdateVenture)
	ventures.Delete("/:id", s.DeleteVenture)
	ventures.Get("/:id", s.GetVenture)

	// Application routes
	applications := protected.Group("/applications")
	applications.Post("/", s.SubmitApplication)
	applications.Get("/", s.GetMyApplications)
	applications.Put("/:id", s.UpdateApplication)
	applications.Get("/:id", s.GetApplication)

	// Admin-only program writes
	programs := protected.Group("/programs", s.AdminRequired())
	programs.Post("/", s.CreateProgram)
	programs.Put("/:id", s.UpdateProgram)
	programs.Delete("/:id", s.DeleteProgram)

	// Milestone routes
	milestones := protected.Group("/milestones")
	milestones.Post("/", s.CreateMilestone)
	milestones.Get("/venture/:ventureId", s.GetVentureMilestones)
	milestones.Put("/:id", s.UpdateMilestone)
	milestones.Delete("/:id", s.DeleteMilestone)
	milestones.Get("/:id", s.GetMilestone)

	// Mentor-match routes
	matches := protected.Group("/mentor-matches")
	matches.Post("/request", s.RequestMentor)
	matches.Get("/requests", s.GetPendingMatchRequests)
	matches.Get("/", s.GetMyMatches)
	matches.Put("/:id/respond", s.RespondToMatch)
	matches.Put("/:id", s.UpdateMatch)
	matches.Delete("/:id", s.DeleteMatch)
	matches.Get("/:id", s.GetMatch)

	// Message routes
	messages := protected.Group("/messages")
	messages.Post("/", s.SendMessage)
	messages.Get("/", s.GetMyMessages)
	messages.Get("/conversation/:userId", s.GetConversation)
	messages.Put("/:id", s.UpdateMessage)
	messages.Delete("/:id", s.DeleteMessage)
	messages.Get("/:id", s.GetMessage)

	// Resource routes
	resources := protected.Group("/resources")
	resources.Post("/categories", s.CreateResourceCategory)
	resources.Get("/categories", s.GetResourceCategories)
	resources.Post("/", s.CreateResource)
	resources.Get("/", s.GetResources)
	resources.Put("/:id", s.UpdateResource)
	resources.Delete("/:id", s.DeleteResource)
	resources.Get("/:id", s.GetResource)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/member", s.MemberDashboard)
	dashboard.Get("/mentor", s.MentorDashboard)
	dashboard.Get("/mentees", s.GetMentees)
	dashboard.Get("/mentees/:id/ventures", s.GetMenteeVentures)

	// Admin routes
	admin := protected.Group("/admin", s.AdminRequired())
	admin.Get("/dashboard/metrics", s.PlatformMetrics)
	admin.Get("/users/pending", s.GetPendingUsers)
	admin.Get("/users", s.GetAllUsers)
	admin.Put("/users/:id/approve", s.ApproveUser)
	admin.Put("/users/:id/reject", s.RejectUser)
	admin.Put("/users/:id", s.AdminUpdateUser)
	admin.Delete("/users/:id", s.AdminDeleteUser)
	admin.Get("/applications", s.GetAllApplications)
	admin.Put("/applications/:id/review", s.ReviewApplication)
}

// Welcome handles the API root route
func (s *Server) Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to the Healthpreneurship Hub API",
		"docs":    "/health",
	})
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
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
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
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It verifies the bearer
// token, loads the account, and rejects unapproved accounts.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})

		// Malformed, bad-signature, and expired tokens all collapse to the
		// same generic response.
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		// The account must still exist and be approved.
		user, err := s.userRepo.GetByID(c.Context(), uint(userID))
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Account no longer exists"))
		}
		if !user.IsApproved {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Account pending approval"))
		}

		c.Locals("userID", user.UserID)
		c.Locals("userRole", user.Role)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.UserID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userRole is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(models.Role)
		if !ok || role != models.RoleAdmin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Healthpreneurship Hub API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
