package server

import (
	"healthhub/internal/middleware"
	"healthhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RequestMentor handles POST /api/mentor-matches/request
func (s *Server) RequestMentor(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		MentorID uint `json:"mentor_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.MentorID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Mentor ID is required"))
	}

	match, err := s.matchService.RequestMentor(c.Context(), user, req.MentorID)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.MentorRequestsTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(match)
}

// GetMyMatches handles GET /api/mentor-matches
func (s *Server) GetMyMatches(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	matches, err := s.matchService.ListForUser(c.Context(), user)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(matches)
}

// GetPendingMatchRequests handles GET /api/mentor-matches/requests (mentor only)
func (s *Server) GetPendingMatchRequests(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	requests, err := s.matchService.PendingRequests(c.Context(), user)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// GetMatch handles GET /api/mentor-matches/:id
func (s *Server) GetMatch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	match, err := s.matchService.Get(c.Context(), user, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(match)
}

// RespondToMatch handles PUT /api/mentor-matches/:id/respond
func (s *Server) RespondToMatch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var accept bool
	switch models.MatchStatus(req.Status) {
	case models.MatchStatusAccepted:
		accept = true
	case models.MatchStatusDeclined:
		accept = false
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status must be accepted or declined"))
	}

	match, err := s.matchService.Respond(c.Context(), user, id, accept)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(match)
}

// UpdateMatch handles PUT /api/mentor-matches/:id
func (s *Server) UpdateMatch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	match, err := s.matchService.UpdateStatus(c.Context(), user, id, models.MatchStatus(req.Status))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(match)
}

// DeleteMatch handles DELETE /api/mentor-matches/:id
func (s *Server) DeleteMatch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	if err := s.matchService.Delete(c.Context(), user, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Match deleted successfully"})
}
