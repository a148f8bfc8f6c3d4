package repository

import (
	"context"
	"errors"

	"healthhub/internal/models"

	"gorm.io/gorm"
)

// VentureRepository defines persistence operations for ventures.
type VentureRepository interface {
	Create(ctx context.Context, venture *models.Venture) error
	GetByID(ctx context.Context, id uint) (*models.Venture, error)
	ListByMember(ctx context.Context, memberID uint) ([]models.Venture, error)
	IDsByMember(ctx context.Context, memberID uint) ([]uint, error)
	Update(ctx context.Context, venture *models.Venture) error
	Delete(ctx context.Context, id uint) error
}

type ventureRepository struct {
	db *gorm.DB
}

// NewVentureRepository returns a new VentureRepository implementation.
func NewVentureRepository(db *gorm.DB) VentureRepository {
	return &ventureRepository{db: db}
}

func (r *ventureRepository) Create(ctx context.Context, venture *models.Venture) error {
	if err := r.db.WithContext(ctx).Create(venture).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ventureRepository) GetByID(ctx context.Context, id uint) (*models.Venture, error) {
	var venture models.Venture
	if err := r.db.WithContext(ctx).First(&venture, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Venture", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &venture, nil
}

func (r *ventureRepository) ListByMember(ctx context.Context, memberID uint) ([]models.Venture, error) {
	var ventures []models.Venture
	if err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Find(&ventures).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ventures, nil
}

func (r *ventureRepository) IDsByMember(ctx context.Context, memberID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Venture{}).
		Where("member_id = ?", memberID).
		Pluck("venture_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *ventureRepository) Update(ctx context.Context, venture *models.Venture) error {
	if err := r.db.WithContext(ctx).Save(venture).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ventureRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Venture{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
