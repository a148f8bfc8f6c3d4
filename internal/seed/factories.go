// Package seed provides helpers to populate the database with demo data.
// Intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"healthhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password shared by every generated account.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var ventureFocus = []string{
	"Telehealth", "Remote Monitoring", "Clinical AI", "Care Coordination",
	"Medical Devices", "Health Records", "Patient Engagement", "Mental Health",
	"Maternal Health", "Elder Care", "Pharmacy", "Diagnostics",
}

var mentorSpecialties = []string{
	"regulatory strategy", "clinical validation", "go-to-market",
	"fundraising", "product design", "reimbursement", "partnerships",
}

// CreateUser constructs and persists a generated account. Optional override
// functions may modify the user before saving.
func (f *Factory) CreateUser(role models.Role, overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		FirstName:  gofakeit.FirstName(),
		LastName:   gofakeit.LastName(),
		Role:       role,
		IsApproved: true,
	}
	user.Email = fmt.Sprintf("%s.%s%d@example.com",
		user.FirstName, user.LastName, gofakeit.Number(100, 999))

	switch role {
	case models.RoleMentor:
		specialty := mentorSpecialties[f.rng.Intn(len(mentorSpecialties))]
		user.ProfileDetails = fmt.Sprintf("%s Mentor focused on %s.", gofakeit.JobTitle(), specialty)
	case models.RoleMember:
		user.ProfileDetails = gofakeit.Sentence(12)
	}

	if f.opts.SkipBcrypt {
		user.PasswordHash = DefaultPassword
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// CreateVenture constructs and persists a venture owned by the given member.
func (f *Factory) CreateVenture(member *models.User, overrides ...func(*models.Venture)) (*models.Venture, error) {
	focus := ventureFocus[f.rng.Intn(len(ventureFocus))]
	venture := &models.Venture{
		MemberID:    member.UserID,
		VentureName: fmt.Sprintf("%s %s", gofakeit.Company(), focus),
		Description: gofakeit.Paragraph(1, 3, 8, " "),
		CreatedAt:   f.pastTimestamp(),
	}
	for _, override := range overrides {
		override(venture)
	}
	if err := f.db.Create(venture).Error; err != nil {
		return nil, fmt.Errorf("create venture: %w", err)
	}
	return venture, nil
}

// CreateProgram constructs and persists an accelerator program authored by
// the given admin.
func (f *Factory) CreateProgram(admin *models.User, overrides ...func(*models.Program)) (*models.Program, error) {
	deadline := time.Now().AddDate(0, 1+f.rng.Intn(5), 0)
	program := &models.Program{
		Title:               fmt.Sprintf("%s %s Cohort", gofakeit.Adjective(), ventureFocus[f.rng.Intn(len(ventureFocus))]),
		Description:         gofakeit.Paragraph(1, 2, 10, " "),
		Requirements:        gofakeit.Sentence(15),
		Benefits:            gofakeit.Sentence(15),
		Duration:            fmt.Sprintf("%d weeks", 6+f.rng.Intn(10)),
		ApplicationDeadline: &deadline,
		IsActive:            1,
		CreatedBy:           admin.UserID,
	}
	for _, override := range overrides {
		override(program)
	}
	if err := f.db.Create(program).Error; err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	return program, nil
}

// CreateMilestones persists between 1 and 4 milestones for the venture.
func (f *Factory) CreateMilestones(venture *models.Venture) ([]*models.Milestone, error) {
	statuses := []models.MilestoneStatus{
		models.MilestoneStatusNotStarted,
		models.MilestoneStatusInProgress,
		models.MilestoneStatusCompleted,
	}
	count := 1 + f.rng.Intn(4)
	milestones := make([]*models.Milestone, 0, count)
	for i := 0; i < count; i++ {
		due := time.Now().AddDate(0, 0, 14*(i+1))
		m := &models.Milestone{
			VentureID:   venture.VentureID,
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Sentence(10),
			Status:      statuses[f.rng.Intn(len(statuses))],
			DueDate:     &due,
		}
		if err := f.db.Create(m).Error; err != nil {
			return nil, fmt.Errorf("create milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	return milestones, nil
}

// CreateApplication submits the venture to a program.
func (f *Factory) CreateApplication(venture *models.Venture, program *models.Program, reviewer *models.User) (*models.Application, error) {
	app := &models.Application{
		VentureID: venture.VentureID,
		Status:    models.ApplicationStatusSubmitted,
	}
	if program != nil {
		app.ProgramID = &program.ProgramID
	}
	// Roughly half the applications have been through review already.
	if reviewer != nil && f.rng.Intn(2) == 0 {
		reviewed := []models.ApplicationStatus{
			models.ApplicationStatusReviewing,
			models.ApplicationStatusApproved,
			models.ApplicationStatusRejected,
		}
		now := time.Now()
		app.Status = reviewed[f.rng.Intn(len(reviewed))]
		app.ReviewedBy = &reviewer.UserID
		app.ReviewedAt = &now
	}
	if err := f.db.Create(app).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

// CreateMatch pairs a member with a mentor in a randomized lifecycle state.
func (f *Factory) CreateMatch(member, mentor *models.User) (*models.MentorMatch, error) {
	statuses := []models.MatchStatus{
		models.MatchStatusPending,
		models.MatchStatusAccepted,
		models.MatchStatusAccepted,
		models.MatchStatusDeclined,
	}
	match := &models.MentorMatch{
		MentorID:  mentor.UserID,
		MemberID:  member.UserID,
		Status:    statuses[f.rng.Intn(len(statuses))],
		CreatedAt: f.pastTimestamp(),
	}
	if err := f.db.Create(match).Error; err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	return match, nil
}

// CreateMessage sends a short message between the two users.
func (f *Factory) CreateMessage(sender, receiver *models.User) (*models.Message, error) {
	msg := &models.Message{
		SenderID:   sender.UserID,
		ReceiverID: receiver.UserID,
		Content:    gofakeit.Sentence(8 + f.rng.Intn(12)),
		IsRead:     f.rng.Intn(3) > 0,
	}
	if err := f.db.Create(msg).Error; err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

// CreateResource uploads a resource into the given category.
func (f *Factory) CreateResource(uploader *models.User, category *models.ResourceCategory) (*models.Resource, error) {
	resource := &models.Resource{
		CategoryID:   category.CategoryID,
		UploadedByID: uploader.UserID,
		Title:        gofakeit.Sentence(5),
		Description:  gofakeit.Sentence(14),
		URL:          gofakeit.URL(),
	}
	if err := f.db.Create(resource).Error; err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return resource, nil
}

// pastTimestamp returns a timestamp spread over the last opts.MaxDays days.
func (f *Factory) pastTimestamp() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}
