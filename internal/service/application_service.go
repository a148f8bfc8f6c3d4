package service

import (
	"context"
	"time"

	"healthhub/internal/models"
	"healthhub/internal/repository"
)

// ApplicationService handles program-application submission and review.
type ApplicationService struct {
	appRepo     repository.ApplicationRepository
	ventureRepo repository.VentureRepository
	programRepo repository.ProgramRepository
}

// NewApplicationService returns a new ApplicationService.
func NewApplicationService(appRepo repository.ApplicationRepository, ventureRepo repository.VentureRepository, programRepo repository.ProgramRepository) *ApplicationService {
	return &ApplicationService{
		appRepo:     appRepo,
		ventureRepo: ventureRepo,
		programRepo: programRepo,
	}
}

// Submit creates a new application for one of the user's ventures.
// Each venture can apply at most once.
func (s *ApplicationService) Submit(ctx context.Context, user *models.User, ventureID uint, programID *uint) (*models.Application, error) {
	venture, err := s.ventureRepo.GetByID(ctx, ventureID)
	if err != nil {
		return nil, err
	}
	if venture.MemberID != user.UserID {
		return nil, models.NewNotFoundError("Venture", ventureID)
	}

	if programID != nil {
		program, err := s.programRepo.GetByID(ctx, *programID)
		if err != nil {
			return nil, err
		}
		if program.IsActive == 0 {
			return nil, models.NewValidationError("Program is no longer accepting applications")
		}
	}

	existing, err := s.appRepo.GetByVentureID(ctx, ventureID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("You have already applied to this venture")
	}

	app := &models.Application{
		VentureID: ventureID,
		ProgramID: programID,
		Status:    models.ApplicationStatusSubmitted,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	return s.appRepo.GetByID(ctx, app.ApplicationID)
}

// ListForUser returns all applications across the user's ventures.
func (s *ApplicationService) ListForUser(ctx context.Context, user *models.User) ([]models.Application, error) {
	ventureIDs, err := s.ventureRepo.IDsByMember(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return s.appRepo.ListByVentureIDs(ctx, ventureIDs)
}

// Get returns an application if the requesting user owns the applying venture.
func (s *ApplicationService) Get(ctx context.Context, user *models.User, applicationID uint) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Venture == nil || app.Venture.MemberID != user.UserID {
		return nil, models.NewForbiddenError("Not authorized to access this application")
	}
	return app, nil
}

// UpdateProgram retargets an owner's application at a different program.
// Status is untouchable here; decisions belong to admin review.
func (s *ApplicationService) UpdateProgram(ctx context.Context, user *models.User, applicationID uint, programID uint) (*models.Application, error) {
	app, err := s.Get(ctx, user, applicationID)
	if err != nil {
		return nil, err
	}

	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		return nil, err
	}
	if program.IsActive == 0 {
		return nil, models.NewValidationError("Program is no longer accepting applications")
	}

	app.ProgramID = &program.ProgramID
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return s.appRepo.GetByID(ctx, applicationID)
}

// ListAll returns every application with venture details, for admin review.
func (s *ApplicationService) ListAll(ctx context.Context) ([]models.Application, error) {
	return s.appRepo.ListAll(ctx)
}

// Review records an admin decision on an application, stamping the reviewer
// and review time.
func (s *ApplicationService) Review(ctx context.Context, reviewer *models.User, applicationID uint, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid application status")
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = status
	app.ReviewedBy = &reviewer.UserID
	app.ReviewedAt = &now
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	return s.appRepo.GetByID(ctx, applicationID)
}
