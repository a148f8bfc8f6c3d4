// Package service contains business logic for the platform's stateful
// workflows: mentor matching, application review, and messaging.
package service

import (
	"context"

	"healthhub/internal/models"
	"healthhub/internal/repository"
)

// MatchService provides mentor-match request/response business logic.
type MatchService struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
}

// NewMatchService returns a new MatchService.
func NewMatchService(matchRepo repository.MatchRepository, userRepo repository.UserRepository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// RequestMentor creates a pending mentorship request from a member to a mentor.
func (s *MatchService) RequestMentor(ctx context.Context, requester *models.User, mentorID uint) (*models.MentorMatch, error) {
	if requester.Role != models.RoleMember {
		return nil, models.NewForbiddenError("Only members can send mentorship requests")
	}
	if mentorID == requester.UserID {
		return nil, models.NewValidationError("Cannot request mentorship from yourself")
	}

	mentor, err := s.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor.Role != models.RoleMentor {
		return nil, models.NewNotFoundError("Mentor", mentorID)
	}

	existing, err := s.matchRepo.GetByPair(ctx, mentorID, requester.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("Request already exists with this mentor")
	}

	match := &models.MentorMatch{
		MentorID: mentorID,
		MemberID: requester.UserID,
		Status:   models.MatchStatusPending,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}

	return s.matchRepo.GetByID(ctx, match.MatchID)
}

// Respond lets the addressed mentor accept or decline a pending request.
// Accepted and declined are terminal: a second respond call fails with a conflict.
func (s *MatchService) Respond(ctx context.Context, responder *models.User, matchID uint, accept bool) (*models.MentorMatch, error) {
	if responder.Role != models.RoleMentor {
		return nil, models.NewForbiddenError("Only mentors can respond to requests")
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.MentorID != responder.UserID {
		return nil, models.NewForbiddenError("Not authorized to respond to this request")
	}
	if match.Status != models.MatchStatusPending {
		return nil, models.NewConflictError("Request has already been responded to")
	}

	status := models.MatchStatusDeclined
	if accept {
		status = models.MatchStatusAccepted
	}
	if err := s.matchRepo.UpdateStatus(ctx, matchID, status); err != nil {
		return nil, err
	}

	return s.matchRepo.GetByID(ctx, matchID)
}

// ListForUser returns the matches the user participates in, on the side
// matching their role.
func (s *MatchService) ListForUser(ctx context.Context, user *models.User) ([]models.MentorMatch, error) {
	if user.Role == models.RoleMentor {
		return s.matchRepo.ListByMentor(ctx, user.UserID)
	}
	return s.matchRepo.ListByMember(ctx, user.UserID)
}

// PendingRequests returns the pending requests addressed to a mentor.
func (s *MatchService) PendingRequests(ctx context.Context, mentor *models.User) ([]models.MentorMatch, error) {
	if mentor.Role != models.RoleMentor {
		return nil, models.NewForbiddenError("Only mentors can view requests")
	}
	return s.matchRepo.ListPendingByMentor(ctx, mentor.UserID)
}

// Get returns a match if the user is one of its two participants.
func (s *MatchService) Get(ctx context.Context, user *models.User, matchID uint) (*models.MentorMatch, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.MentorID != user.UserID && match.MemberID != user.UserID {
		return nil, models.NewForbiddenError("Not authorized to access this match")
	}
	return match, nil
}

// UpdateStatus lets a participant set the match status directly.
func (s *MatchService) UpdateStatus(ctx context.Context, user *models.User, matchID uint, status models.MatchStatus) (*models.MentorMatch, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid match status")
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.MentorID != user.UserID && match.MemberID != user.UserID {
		return nil, models.NewForbiddenError("Not authorized to update this match")
	}

	if err := s.matchRepo.UpdateStatus(ctx, matchID, status); err != nil {
		return nil, err
	}
	return s.matchRepo.GetByID(ctx, matchID)
}

// Delete removes a match; only a participant may do so.
func (s *MatchService) Delete(ctx context.Context, user *models.User, matchID uint) error {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match.MentorID != user.UserID && match.MemberID != user.UserID {
		return models.NewForbiddenError("Not authorized to delete this match")
	}
	return s.matchRepo.Delete(ctx, matchID)
}
