package server

import (
	"healthhub/internal/models"
	"healthhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ventureRequest struct {
	VentureName string `json:"venture_name" validate:"required,max=255"`
	Description string `json:"description"`
}

// CreateVenture handles POST /api/ventures
func (s *Server) CreateVenture(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}
	if user.Role != models.RoleMember {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only members can create ventures"))
	}

	var req ventureRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	venture := &models.Venture{
		MemberID:    user.UserID,
		VentureName: validation.SanitizeString(req.VentureName),
		Description: req.Description,
	}
	if err := s.ventureRepo.Create(c.Context(), venture); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venture)
}

// GetMyVentures handles GET /api/ventures; the listing is scoped to the caller.
func (s *Server) GetMyVentures(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	ventures, err := s.ventureRepo.ListByMember(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(ventures)
}

// GetVenture handles GET /api/ventures/:id
func (s *Server) GetVenture(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	venture, err := s.ventureRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if venture.MemberID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Not authorized to access this venture"))
	}
	return c.JSON(venture)
}

// UpdateVenture handles PUT /api/ventures/:id
func (s *Server) UpdateVenture(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	venture, err := s.ventureRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if venture.MemberID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Not authorized to update this venture"))
	}

	var req struct {
		VentureName *string `json:"venture_name"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.VentureName != nil {
		if *req.VentureName == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Venture name cannot be empty"))
		}
		venture.VentureName = validation.SanitizeString(*req.VentureName)
	}
	if req.Description != nil {
		venture.Description = *req.Description
	}

	if err := s.ventureRepo.Update(c.Context(), venture); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(venture)
}

// DeleteVenture handles DELETE /api/ventures/:id
func (s *Server) DeleteVenture(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	venture, err := s.ventureRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if venture.MemberID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Not authorized to delete this venture"))
	}

	if err := s.ventureRepo.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Venture deleted successfully"})
}
