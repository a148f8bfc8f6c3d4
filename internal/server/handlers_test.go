package server

import (
	"testing"

	"healthhub/internal/config"
	"healthhub/internal/database"
	"healthhub/internal/models"
	"healthhub/internal/repository"
	"healthhub/internal/service"
	"healthhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer builds a Server over an in-memory database without the
// metrics middleware (Prometheus collectors register globally).
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db := setupHandlerTestDB(t)

	s := &Server{
		config:          &config.Config{JWTSecret: "test_secret", JWTTTLSeconds: 3600},
		db:              db,
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
	s.matchService = service.NewMatchService(s.matchRepo, s.userRepo)
	s.applicationService = service.NewApplicationService(s.applicationRepo, s.ventureRepo, s.programRepo)
	s.messageService = service.NewMessageService(s.messageRepo, s.userRepo)
	return s, db
}

// asUser returns middleware that stubs the auth locals for the given user.
func asUser(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", user.UserID)
		c.Locals("userRole", user.Role)
		return c.Next()
	}
}

func mustCreateUser(t *testing.T, db *gorm.DB, firstName string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:    firstName,
		LastName:     "Test",
		Email:        firstName + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         role,
		IsApproved:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateVenture(t *testing.T, db *gorm.DB, memberID uint, name string) *models.Venture {
	t.Helper()
	venture := &models.Venture{MemberID: memberID, VentureName: name}
	if err := db.Create(venture).Error; err != nil {
		t.Fatalf("create venture: %v", err)
	}
	return venture
}
