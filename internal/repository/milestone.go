package repository

import (
	"context"
	"errors"

	"healthhub/internal/models"

	"gorm.io/gorm"
)

// MilestoneRepository defines persistence operations for venture milestones.
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *models.Milestone) error
	GetByID(ctx context.Context, id uint) (*models.Milestone, error)
	ListByVenture(ctx context.Context, ventureID uint) ([]models.Milestone, error)
	Update(ctx context.Context, milestone *models.Milestone) error
	Delete(ctx context.Context, id uint) error
}

type milestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository returns a new MilestoneRepository implementation.
func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) Create(ctx context.Context, milestone *models.Milestone) error {
	if err := r.db.WithContext(ctx).Create(milestone).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *milestoneRepository) GetByID(ctx context.Context, id uint) (*models.Milestone, error) {
	var milestone models.Milestone
	if err := r.db.WithContext(ctx).Preload("Venture").First(&milestone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Milestone", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &milestone, nil
}

func (r *milestoneRepository) ListByVenture(ctx context.Context, ventureID uint) ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := r.db.WithContext(ctx).Where("venture_id = ?", ventureID).Find(&milestones).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return milestones, nil
}

func (r *milestoneRepository) Update(ctx context.Context, milestone *models.Milestone) error {
	if err := r.db.WithContext(ctx).Save(milestone).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *milestoneRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Milestone{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
