package server

import (
	"time"

	"healthhub/internal/models"
	"healthhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// requireVentureOwner loads a venture and verifies the caller owns it.
// Ownership of a milestone is always resolved through its parent venture.
func (s *Server) requireVentureOwner(c *fiber.Ctx, ventureID uint) (*models.Venture, error) {
	userID := c.Locals("userID").(uint)
	venture, err := s.ventureRepo.GetByID(c.Context(), ventureID)
	if err != nil {
		_ = respondServiceError(c, err)
		return nil, errResponseWritten
	}
	if venture.MemberID != userID {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Not authorized to access this venture"))
		return nil, errResponseWritten
	}
	return venture, nil
}

type milestoneRequest struct {
	VentureID   uint       `json:"venture_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateMilestone handles POST /api/milestones
func (s *Server) CreateMilestone(c *fiber.Ctx) error {
	var req milestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	if _, err := s.requireVentureOwner(c, req.VentureID); err != nil {
		return nil
	}

	status := models.MilestoneStatusNotStarted
	if req.Status != "" {
		status = models.MilestoneStatus(req.Status)
		if !status.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid milestone status"))
		}
	}

	milestone := &models.Milestone{
		VentureID:   req.VentureID,
		Title:       validation.SanitizeString(req.Title),
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
	}
	if err := s.milestoneRepo.Create(c.Context(), milestone); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(milestone)
}

// GetVentureMilestones handles GET /api/milestones/venture/:ventureId
func (s *Server) GetVentureMilestones(c *fiber.Ctx) error {
	ventureID, err := s.parseID(c, "ventureId")
	if err != nil {
		return nil
	}
	if _, err := s.requireVentureOwner(c, ventureID); err != nil {
		return nil
	}

	milestones, err := s.milestoneRepo.ListByVenture(c.Context(), ventureID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(milestones)
}

// GetMilestone handles GET /api/milestones/:id
func (s *Server) GetMilestone(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	milestone, err := s.milestoneRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if _, err := s.requireVentureOwner(c, milestone.VentureID); err != nil {
		return nil
	}
	return c.JSON(milestone)
}

// UpdateMilestone handles PUT /api/milestones/:id
func (s *Server) UpdateMilestone(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	milestone, err := s.milestoneRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if _, err := s.requireVentureOwner(c, milestone.VentureID); err != nil {
		return nil
	}

	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Status      *string    `json:"status"`
		DueDate     *time.Time `json:"due_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title != nil {
		if *req.Title == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Title cannot be empty"))
		}
		milestone.Title = validation.SanitizeString(*req.Title)
	}
	if req.Description != nil {
		milestone.Description = *req.Description
	}
	if req.Status != nil {
		status := models.MilestoneStatus(*req.Status)
		if !status.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid milestone status"))
		}
		milestone.Status = status
	}
	if req.DueDate != nil {
		milestone.DueDate = req.DueDate
	}

	if err := s.milestoneRepo.Update(c.Context(), milestone); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(milestone)
}

// DeleteMilestone handles DELETE /api/milestones/:id
func (s *Server) DeleteMilestone(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	milestone, err := s.milestoneRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if _, err := s.requireVentureOwner(c, milestone.VentureID); err != nil {
		return nil
	}

	if err := s.milestoneRepo.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Milestone deleted successfully"})
}
