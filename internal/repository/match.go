package repository

import (
	"context"
	"errors"

	"healthhub/internal/models"

	"gorm.io/gorm"
)

// MatchRepository defines persistence operations for mentor matches.
type MatchRepository interface {
	Create(ctx context.Context, match *models.MentorMatch) error
	GetByID(ctx context.Context, id uint) (*models.MentorMatch, error)
	GetByPair(ctx context.Context, mentorID, memberID uint) (*models.MentorMatch, error)
	ListByMentor(ctx context.Context, mentorID uint) ([]models.MentorMatch, error)
	ListByMember(ctx context.Context, memberID uint) ([]models.MentorMatch, error)
	ListPendingByMentor(ctx context.Context, mentorID uint) ([]models.MentorMatch, error)
	UpdateStatus(ctx context.Context, matchID uint, status models.MatchStatus) error
	Delete(ctx context.Context, matchID uint) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository returns a new MatchRepository implementation.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *models.MentorMatch) error {
	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Request already exists with this mentor")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id uint) (*models.MentorMatch, error) {
	var match models.MentorMatch
	if err := r.db.WithContext(ctx).First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Mentor match", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &match, nil
}

func (r *matchRepository) GetByPair(ctx context.Context, mentorID, memberID uint) (*models.MentorMatch, error) {
	var match models.MentorMatch
	if err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND member_id = ?", mentorID, memberID).
		First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &match, nil
}

func (r *matchRepository) ListByMentor(ctx context.Context, mentorID uint) ([]models.MentorMatch, error) {
	var matches []models.MentorMatch
	if err := r.db.WithContext(ctx).Where("mentor_id = ?", mentorID).Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

func (r *matchRepository) ListByMember(ctx context.Context, memberID uint) ([]models.MentorMatch, error) {
	var matches []models.MentorMatch
	if err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

func (r *matchRepository) ListPendingByMentor(ctx context.Context, mentorID uint) ([]models.MentorMatch, error) {
	var matches []models.MentorMatch
	if err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND status = ?", mentorID, models.MatchStatusPending).
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, matchID uint, status models.MatchStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.MentorMatch{}).
		Where("match_id = ?", matchID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) Delete(ctx context.Context, matchID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.MentorMatch{}, matchID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
