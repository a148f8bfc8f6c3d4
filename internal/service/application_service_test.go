package service

import (
	"context"
	"testing"

	"healthhub/internal/models"
)

type applicationRepoStub struct {
	createFn           func(context.Context, *models.Application) error
	getByIDFn          func(context.Context, uint) (*models.Application, error)
	getByVentureIDFn   func(context.Context, uint) (*models.Application, error)
	listByVentureIDsFn func(context.Context, []uint) ([]models.Application, error)
	listAllFn          func(context.Context) ([]models.Application, error)
	updateFn           func(context.Context, *models.Application) error
}

func (s *applicationRepoStub) Create(ctx context.Context, app *models.Application) error {
	return s.createFn(ctx, app)
}
func (s *applicationRepoStub) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	return s.getByIDFn(ctx, id)
}
func (s *applicationRepoStub) GetByVentureID(ctx context.Context, ventureID uint) (*models.Application, error) {
	return s.getByVentureIDFn(ctx, ventureID)
}
func (s *applicationRepoStub) ListByVentureIDs(ctx context.Context, ventureIDs []uint) ([]models.Application, error) {
	return s.listByVentureIDsFn(ctx, ventureIDs)
}
func (s *applicationRepoStub) ListAll(ctx context.Context) ([]models.Application, error) {
	return s.listAllFn(ctx)
}
func (s *applicationRepoStub) Update(ctx context.Context, app *models.Application) error {
	return s.updateFn(ctx, app)
}

type ventureRepoStub struct {
	createFn       func(context.Context, *models.Venture) error
	getByIDFn      func(context.Context, uint) (*models.Venture, error)
	listByMemberFn func(context.Context, uint) ([]models.Venture, error)
	idsByMemberFn  func(context.Context, uint) ([]uint, error)
	updateFn       func(context.Context, *models.Venture) error
	deleteFn       func(context.Context, uint) error
}

func (s *ventureRepoStub) Create(ctx context.Context, venture *models.Venture) error {
	return s.createFn(ctx, venture)
}
func (s *ventureRepoStub) GetByID(ctx context.Context, id uint) (*models.Venture, error) {
	return s.getByIDFn(ctx, id)
}
func (s *ventureRepoStub) ListByMember(ctx context.Context, memberID uint) ([]models.Venture, error) {
	return s.listByMemberFn(ctx, memberID)
}
func (s *ventureRepoStub) IDsByMember(ctx context.Context, memberID uint) ([]uint, error) {
	return s.idsByMemberFn(ctx, memberID)
}
func (s *ventureRepoStub) Update(ctx context.Context, venture *models.Venture) error {
	return s.updateFn(ctx, venture)
}
func (s *ventureRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type programRepoStub struct {
	createFn     func(context.Context, *models.Program) error
	getByIDFn    func(context.Context, uint) (*models.Program, error)
	listActiveFn func(context.Context) ([]models.Program, error)
	updateFn     func(context.Context, *models.Program) error
}

func (s *programRepoStub) Create(ctx context.Context, program *models.Program) error {
	return s.createFn(ctx, program)
}
func (s *programRepoStub) GetByID(ctx context.Context, id uint) (*models.Program, error) {
	return s.getByIDFn(ctx, id)
}
func (s *programRepoStub) ListActive(ctx context.Context) ([]models.Program, error) {
	return s.listActiveFn(ctx)
}
func (s *programRepoStub) Update(ctx context.Context, program *models.Program) error {
	return s.updateFn(ctx, program)
}

func noopApplicationRepo() *applicationRepoStub {
	return &applicationRepoStub{
		createFn:           func(context.Context, *models.Application) error { return nil },
		getByIDFn:          func(context.Context, uint) (*models.Application, error) { return &models.Application{}, nil },
		getByVentureIDFn:   func(context.Context, uint) (*models.Application, error) { return nil, nil },
		listByVentureIDsFn: func(context.Context, []uint) ([]models.Application, error) { return nil, nil },
		listAllFn:          func(context.Context) ([]models.Application, error) { return nil, nil },
		updateFn:           func(context.Context, *models.Application) error { return nil },
	}
}

func noopVentureRepo() *ventureRepoStub {
	return &ventureRepoStub{
		createFn:       func(context.Context, *models.Venture) error { return nil },
		getByIDFn:      func(context.Context, uint) (*models.Venture, error) { return &models.Venture{}, nil },
		listByMemberFn: func(context.Context, uint) ([]models.Venture, error) { return nil, nil },
		idsByMemberFn:  func(context.Context, uint) ([]uint, error) { return nil, nil },
		updateFn:       func(context.Context, *models.Venture) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
	}
}

func noopProgramRepo() *programRepoStub {
	return &programRepoStub{
		createFn:     func(context.Context, *models.Program) error { return nil },
		getByIDFn:    func(context.Context, uint) (*models.Program, error) { return &models.Program{IsActive: 1}, nil },
		listActiveFn: func(context.Context) ([]models.Program, error) { return nil, nil },
		updateFn:     func(context.Context, *models.Program) error { return nil },
	}
}

func TestApplicationServiceSubmitForeignVenture(t *testing.T) {
	ventures := noopVentureRepo()
	ventures.getByIDFn = func(context.Context, uint) (*models.Venture, error) {
		return &models.Venture{VentureID: 4, MemberID: 99}, nil
	}

	svc := NewApplicationService(noopApplicationRepo(), ventures, noopProgramRepo())
	user := &models.User{UserID: 3, Role: models.RoleMember}
	_, err := svc.Submit(context.Background(), user, 4, nil)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestApplicationServiceSubmitDuplicate(t *testing.T) {
	ventures := noopVentureRepo()
	ventures.getByIDFn = func(context.Context, uint) (*models.Venture, error) {
		return &models.Venture{VentureID: 4, MemberID: 3}, nil
	}
	apps := noopApplicationRepo()
	apps.getByVentureIDFn = func(context.Context, uint) (*models.Application, error) {
		return &models.Application{ApplicationID: 1, VentureID: 4}, nil
	}

	svc := NewApplicationService(apps, ventures, noopProgramRepo())
	user := &models.User{UserID: 3, Role: models.RoleMember}
	_, err := svc.Submit(context.Background(), user, 4, nil)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestApplicationServiceSubmitInactiveProgram(t *testing.T) {
	ventures := noopVentureRepo()
	ventures.getByIDFn = func(context.Context, uint) (*models.Venture, error) {
		return &models.Venture{VentureID: 4, MemberID: 3}, nil
	}
	programs := noopProgramRepo()
	programs.getByIDFn = func(context.Context, uint) (*models.Program, error) {
		return &models.Program{ProgramID: 2, IsActive: 0}, nil
	}

	svc := NewApplicationService(noopApplicationRepo(), ventures, programs)
	user := &models.User{UserID: 3, Role: models.RoleMember}
	programID := uint(2)
	_, err := svc.Submit(context.Background(), user, 4, &programID)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestApplicationServiceSubmitDefaultsToSubmitted(t *testing.T) {
	ventures := noopVentureRepo()
	ventures.getByIDFn = func(context.Context, uint) (*models.Venture, error) {
		return &models.Venture{VentureID: 4, MemberID: 3}, nil
	}
	apps := noopApplicationRepo()
	var created *models.Application
	apps.createFn = func(_ context.Context, a *models.Application) error {
		a.ApplicationID = 8
		created = a
		return nil
	}
	apps.getByIDFn = func(context.Context, uint) (*models.Application, error) { return created, nil }

	svc := NewApplicationService(apps, ventures, noopProgramRepo())
	user := &models.User{UserID: 3, Role: models.RoleMember}
	app, err := svc.Submit(context.Background(), user, 4, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != models.ApplicationStatusSubmitted {
		t.Fatalf("expected submitted status, got %s", app.Status)
	}
}

func TestApplicationServiceGetNotOwner(t *testing.T) {
	apps := noopApplicationRepo()
	apps.getByIDFn = func(context.Context, uint) (*models.Application, error) {
		return &models.Application{
			ApplicationID: 8,
			VentureID:     4,
			Venture:       &models.Venture{VentureID: 4, MemberID: 99},
		}, nil
	}

	svc := NewApplicationService(apps, noopVentureRepo(), noopProgramRepo())
	user := &models.User{UserID: 3, Role: models.RoleMember}
	_, err := svc.Get(context.Background(), user, 8)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestApplicationServiceUpdateProgramLeavesStatus(t *testing.T) {
	apps := noopApplicationRepo()
	state := &models.Application{
		ApplicationID: 8,
		VentureID:     4,
		Status:        models.ApplicationStatusSubmitted,
		Venture:       &models.Venture{VentureID: 4, MemberID: 3},
	}
	apps.getByIDFn = func(context.Context, uint) (*models.Application, error) { return state, nil }
	apps.updateFn = func(_ context.Context, a *models.Application) error {
		state = a
		return nil
	}
	programs := noopProgramRepo()
	programs.getByIDFn = func(_ context.Context, id uint) (*models.Program, error) {
		return &models.Program{ProgramID: id, IsActive: 1}, nil
	}

	svc := NewApplicationService(apps, noopVentureRepo(), programs)
	user := &models.User{UserID: 3, Role: models.RoleMember}
	app, err := svc.UpdateProgram(context.Background(), user, 8, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.ProgramID == nil || *app.ProgramID != 2 {
		t.Fatal("expected program to be retargeted")
	}
	if app.Status != models.ApplicationStatusSubmitted {
		t.Fatalf("owner update must not touch status, got %s", app.Status)
	}
	if app.ReviewedBy != nil {
		t.Fatal("owner update must not stamp a reviewer")
	}
}

func TestApplicationServiceUpdateProgramInactive(t *testing.T) {
	apps := noopApplicationRepo()
	apps.getByIDFn = func(context.Context, uint) (*models.Application, error) {
		return &models.Application{
			ApplicationID: 8,
			VentureID:     4,
			Venture:       &models.Venture{VentureID: 4, MemberID: 3},
		}, nil
	}
	programs := noopProgramRepo()
	programs.getByIDFn = func(context.Context, uint) (*models.Program, error) {
		return &models.Program{ProgramID: 2, IsActive: 0}, nil
	}

	svc := NewApplicationService(apps, noopVentureRepo(), programs)
	user := &models.User{UserID: 3, Role: models.RoleMember}
	_, err := svc.UpdateProgram(context.Background(), user, 8, 2)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestApplicationServiceReviewStampsReviewer(t *testing.T) {
	apps := noopApplicationRepo()
	state := &models.Application{ApplicationID: 8, Status: models.ApplicationStatusSubmitted}
	apps.getByIDFn = func(context.Context, uint) (*models.Application, error) { return state, nil }
	apps.updateFn = func(_ context.Context, a *models.Application) error {
		state = a
		return nil
	}

	svc := NewApplicationService(apps, noopVentureRepo(), noopProgramRepo())
	admin := &models.User{UserID: 1, Role: models.RoleAdmin}
	app, err := svc.Review(context.Background(), admin, 8, models.ApplicationStatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != models.ApplicationStatusApproved {
		t.Fatalf("expected approved status, got %s", app.Status)
	}
	if app.ReviewedBy == nil || *app.ReviewedBy != 1 {
		t.Fatal("expected reviewer to be stamped")
	}
	if app.ReviewedAt == nil {
		t.Fatal("expected review time to be stamped")
	}
}

func TestApplicationServiceReviewInvalidStatus(t *testing.T) {
	svc := NewApplicationService(noopApplicationRepo(), noopVentureRepo(), noopProgramRepo())
	admin := &models.User{UserID: 1, Role: models.RoleAdmin}
	_, err := svc.Review(context.Background(), admin, 8, models.ApplicationStatus("bogus"))
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
