package server

import (
	"time"

	"healthhub/internal/models"
	"healthhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type programRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description" validate:"required"`
	Requirements        string     `json:"requirements"`
	Benefits            string     `json:"benefits"`
	Duration            string     `json:"duration"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

// CreateProgram handles POST /api/programs (admin only)
func (s *Server) CreateProgram(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req programRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	program := &models.Program{
		Title:               validation.SanitizeString(req.Title),
		Description:         req.Description,
		Requirements:        req.Requirements,
		Benefits:            req.Benefits,
		Duration:            req.Duration,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            1,
		CreatedBy:           userID,
	}
	if err := s.programRepo.Create(c.Context(), program); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(program)
}

// GetPrograms handles GET /api/programs; only active programs are listed.
func (s *Server) GetPrograms(c *fiber.Ctx) error {
	programs, err := s.programRepo.ListActive(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(programs)
}

// GetProgram handles GET /api/programs/:id
func (s *Server) GetProgram(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	program, err := s.programRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(program)
}

// UpdateProgram handles PUT /api/programs/:id (admin only). Setting is_active
// back to 1 through this route is the only reactivation path.
func (s *Server) UpdateProgram(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	program, err := s.programRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	var req struct {
		Title               *string    `json:"title"`
		Description         *string    `json:"description"`
		Requirements        *string    `json:"requirements"`
		Benefits            *string    `json:"benefits"`
		Duration            *string    `json:"duration"`
		ApplicationDeadline *time.Time `json:"application_deadline"`
		IsActive            *int       `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title != nil {
		program.Title = validation.SanitizeString(*req.Title)
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.Requirements != nil {
		program.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		program.Benefits = *req.Benefits
	}
	if req.Duration != nil {
		program.Duration = *req.Duration
	}
	if req.ApplicationDeadline != nil {
		program.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.IsActive != nil {
		if *req.IsActive != 0 && *req.IsActive != 1 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("is_active must be 0 or 1"))
		}
		program.IsActive = *req.IsActive
	}

	if err := s.programRepo.Update(c.Context(), program); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(program)
}

// DeleteProgram handles DELETE /api/programs/:id (admin only, soft delete)
func (s *Server) DeleteProgram(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	program, err := s.programRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	program.IsActive = 0
	if err := s.programRepo.Update(c.Context(), program); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Program deleted successfully"})
}
