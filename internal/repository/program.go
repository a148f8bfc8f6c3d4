package repository

import (
	"context"
	"errors"

	"healthhub/internal/models"

	"gorm.io/gorm"
)

// ProgramRepository defines persistence operations for programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id uint) (*models.Program, error)
	ListActive(ctx context.Context) ([]models.Program, error)
	Update(ctx context.Context, program *models.Program) error
}

type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository returns a new ProgramRepository implementation.
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(ctx context.Context, program *models.Program) error {
	if err := r.db.WithContext(ctx).Create(program).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *programRepository) GetByID(ctx context.Context, id uint) (*models.Program, error) {
	var program models.Program
	if err := r.db.WithContext(ctx).First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Program", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &program, nil
}

func (r *programRepository) ListActive(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	if err := r.db.WithContext(ctx).Where("is_active = ?", 1).Find(&programs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return programs, nil
}

func (r *programRepository) Update(ctx context.Context, program *models.Program) error {
	if err := r.db.WithContext(ctx).Save(program).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
