package repository

import (
	"context"
	"errors"

	"healthhub/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository defines persistence operations for program applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	GetByVentureID(ctx context.Context, ventureID uint) (*models.Application, error)
	ListByVentureIDs(ctx context.Context, ventureIDs []uint) ([]models.Application, error)
	ListAll(ctx context.Context) ([]models.Application, error)
	Update(ctx context.Context, application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a new ApplicationRepository implementation.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("You have already applied to this venture")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).Preload("Venture").First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}

func (r *applicationRepository) GetByVentureID(ctx context.Context, ventureID uint) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).Where("venture_id = ?", ventureID).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}

func (r *applicationRepository) ListByVentureIDs(ctx context.Context, ventureIDs []uint) ([]models.Application, error) {
	applications := []models.Application{}
	if len(ventureIDs) == 0 {
		return applications, nil
	}
	if err := r.db.WithContext(ctx).Where("venture_id IN ?", ventureIDs).Find(&applications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.WithContext(ctx).Find(&applications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Save(application).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
