package repository

import (
	"context"
	"errors"

	"healthhub/internal/models"

	"gorm.io/gorm"
)

// ResourceRepository defines persistence operations for the resource library
// and its categories.
type ResourceRepository interface {
	CreateCategory(ctx context.Context, category *models.ResourceCategory) error
	GetCategoryByID(ctx context.Context, id uint) (*models.ResourceCategory, error)
	ListCategories(ctx context.Context) ([]models.ResourceCategory, error)
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id uint) (*models.Resource, error)
	List(ctx context.Context, limit, offset int, categoryID *uint) ([]models.Resource, error)
	ListByUploader(ctx context.Context, uploaderID uint) ([]models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository returns a new ResourceRepository implementation.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) CreateCategory(ctx context.Context, category *models.ResourceCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Category already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *resourceRepository) GetCategoryByID(ctx context.Context, id uint) (*models.ResourceCategory, error) {
	var category models.ResourceCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Resource category", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &category, nil
}

func (r *resourceRepository) ListCategories(ctx context.Context) ([]models.ResourceCategory, error) {
	var categories []models.ResourceCategory
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return categories, nil
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Resource", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &resource, nil
}

func (r *resourceRepository) List(ctx context.Context, limit, offset int, categoryID *uint) ([]models.Resource, error) {
	var resources []models.Resource
	query := r.db.WithContext(ctx).Limit(limit).Offset(offset)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if err := query.Find(&resources).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return resources, nil
}

func (r *resourceRepository) ListByUploader(ctx context.Context, uploaderID uint) ([]models.Resource, error) {
	var resources []models.Resource
	if err := r.db.WithContext(ctx).Where("uploaded_by_id = ?", uploaderID).Find(&resources).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return resources, nil
}

func (r *resourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	if err := r.db.WithContext(ctx).Save(resource).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Resource{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
