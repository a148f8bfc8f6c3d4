package seed

import (
	"fmt"
	"log"

	"healthhub/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumMentors  int
	NumMembers  int
	NumPrograms int
	// MaxDays bounds how far back generated timestamps are spread.
	MaxDays int
	// ShouldClean truncates all tables before seeding.
	ShouldClean bool
	// SkipBcrypt stores the plaintext password, for fast local iteration only.
	SkipBcrypt bool
}

// AdminEmail is the well-known address of the seeded admin account.
const AdminEmail = "admin@healthhub.dev"

var resourceCategories = []string{
	"Funding & Grants", "Regulatory & Compliance", "Clinical Evidence",
	"Product & Design", "Go-to-Market", "Operations",
}

// Seed populates the database with a demo dataset: one admin, a pool of
// mentors and members, ventures with milestones, programs with applications,
// mentor matches, conversations, and a categorized resource library.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumMentors <= 0 {
		opts.NumMentors = 8
	}
	if opts.NumMembers <= 0 {
		opts.NumMembers = 25
	}
	if opts.NumPrograms <= 0 {
		opts.NumPrograms = 4
	}

	log.Printf("Seeding database: %d mentors, %d members, %d programs",
		opts.NumMentors, opts.NumMembers, opts.NumPrograms)

	if opts.ShouldClean {
		if err := ClearAll(db); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	f := NewFactory(db, opts)

	admin, err := EnsureAdmin(db, opts)
	if err != nil {
		return err
	}

	mentors := make([]*models.User, 0, opts.NumMentors)
	for i := 0; i < opts.NumMentors; i++ {
		mentor, err := f.CreateUser(models.RoleMentor)
		if err != nil {
			return err
		}
		mentors = append(mentors, mentor)
	}
	log.Printf("created %d mentors", len(mentors))

	members := make([]*models.User, 0, opts.NumMembers)
	for i := 0; i < opts.NumMembers; i++ {
		member, err := f.CreateUser(models.RoleMember)
		if err != nil {
			return err
		}
		members = append(members, member)
	}
	log.Printf("created %d members", len(members))

	programs := make([]*models.Program, 0, opts.NumPrograms)
	for i := 0; i < opts.NumPrograms; i++ {
		program, err := f.CreateProgram(admin)
		if err != nil {
			return err
		}
		programs = append(programs, program)
	}

	categories := make([]*models.ResourceCategory, 0, len(resourceCategories))
	for _, name := range resourceCategories {
		cat := &models.ResourceCategory{CategoryName: name}
		if err := db.Where("category_name = ?", name).FirstOrCreate(cat).Error; err != nil {
			return fmt.Errorf("create category %q: %w", name, err)
		}
		categories = append(categories, cat)
	}

	ventures := 0
	applications := 0
	for i, member := range members {
		// Most members have a venture, some have two.
		count := 1
		if f.rng.Intn(4) == 0 {
			count = 2
		}
		if f.rng.Intn(6) == 0 {
			count = 0
		}
		for v := 0; v < count; v++ {
			venture, err := f.CreateVenture(member)
			if err != nil {
				return err
			}
			ventures++
			if _, err := f.CreateMilestones(venture); err != nil {
				return err
			}
			// Each venture applies at most once.
			if f.rng.Intn(3) > 0 {
				program := programs[f.rng.Intn(len(programs))]
				if _, err := f.CreateApplication(venture, program, admin); err != nil {
					return err
				}
				applications++
			}
		}

		// A slice of the member pool has requested a mentor.
		if f.rng.Intn(2) == 0 {
			mentor := mentors[i%len(mentors)]
			if _, err := f.CreateMatch(member, mentor); err != nil {
				return err
			}
			if _, err := f.CreateMessage(member, mentor); err != nil {
				return err
			}
			if _, err := f.CreateMessage(mentor, member); err != nil {
				return err
			}
		}
	}
	log.Printf("created %d ventures, %d applications", ventures, applications)

	resources := 0
	for _, mentor := range mentors {
		for r := 0; r < 1+f.rng.Intn(3); r++ {
			category := categories[f.rng.Intn(len(categories))]
			if _, err := f.CreateResource(mentor, category); err != nil {
				return err
			}
			resources++
		}
	}
	log.Printf("created %d resources in %d categories", resources, len(categories))

	log.Printf("seeding complete; all accounts use password %q", DefaultPassword)
	return nil
}

// EnsureAdmin creates the well-known admin account if it does not exist yet.
// It is idempotent so repeated seed runs keep a single admin.
func EnsureAdmin(db *gorm.DB, opts Options) (*models.User, error) {
	var admin models.User
	err := db.Where("email = ?", AdminEmail).First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("look up admin: %w", err)
	}

	passwordHash := DefaultPassword
	if !opts.SkipBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		passwordHash = string(hashed)
	}

	admin = models.User{
		FirstName:    "Platform",
		LastName:     "Admin",
		Email:        AdminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		IsApproved:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	log.Printf("created admin account %s", AdminEmail)
	return &admin, nil
}

// ClearAll removes all seeded rows. Child tables go first so foreign keys
// hold even without ON DELETE CASCADE support.
func ClearAll(db *gorm.DB) error {
	tables := []interface{}{
		&models.Message{},
		&models.MentorMatch{},
		&models.Resource{},
		&models.ResourceCategory{},
		&models.Application{},
		&models.Milestone{},
		&models.Venture{},
		&models.Program{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	log.Println("cleared existing data")
	return nil
}
