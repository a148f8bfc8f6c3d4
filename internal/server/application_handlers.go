package server

import (
	"healthhub/internal/middleware"
	"healthhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitApplication handles POST /api/applications
func (s *Server) SubmitApplication(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		VentureID uint  `json:"venture_id" validate:"required"`
		ProgramID *uint `json:"program_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.VentureID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Venture ID is required"))
	}

	app, err := s.applicationService.Submit(c.Context(), user, req.VentureID, req.ProgramID)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.ApplicationsSubmittedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(app)
}

// GetMyApplications handles GET /api/applications; scoped to the caller's ventures.
func (s *Server) GetMyApplications(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	apps, err := s.applicationService.ListForUser(c.Context(), user)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(apps)
}

// UpdateApplication handles PUT /api/applications/:id (owner only).
// Only the program target may change; status moves through admin review.
func (s *Server) UpdateApplication(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		ProgramID *uint `json:"program_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ProgramID == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("program_id is required"))
	}

	app, err := s.applicationService.UpdateProgram(c.Context(), user, id, *req.ProgramID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(app)
}

// GetApplication handles GET /api/applications/:id
func (s *Server) GetApplication(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	app, err := s.applicationService.Get(c.Context(), user, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(app)
}
