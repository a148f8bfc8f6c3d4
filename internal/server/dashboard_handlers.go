package server

import (
	"healthhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// MemberDashboard handles GET /api/dashboard/member
func (s *Server) MemberDashboard(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}
	if user.Role != models.RoleMember {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Member access only"))
	}
	ctx := c.Context()

	ventures, err := s.ventureRepo.ListByMember(ctx, user.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	ventureIDs := make([]uint, 0, len(ventures))
	for _, v := range ventures {
		ventureIDs = append(ventureIDs, v.VentureID)
	}
	applications, err := s.applicationRepo.ListByVentureIDs(ctx, ventureIDs)
	if err != nil {
		return respondServiceError(c, err)
	}

	matches, err := s.matchRepo.ListByMember(ctx, user.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	programs, err := s.programRepo.ListActive(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	pendingApps, approvedApps := 0, 0
	for _, a := range applications {
		switch a.Status {
		case models.ApplicationStatusSubmitted:
			pendingApps++
		case models.ApplicationStatusApproved:
			approvedApps++
		}
	}
	connections := 0
	for _, m := range matches {
		if m.Status == models.MatchStatusAccepted {
			connections++
		}
	}

	return c.JSON(fiber.Map{
		"user":               user,
		"ventures":           ventures,
		"applications":       applications,
		"mentor_matches":     matches,
		"available_programs": programs,
		"stats": fiber.Map{
			"total_ventures":        len(ventures),
			"total_applications":    len(applications),
			"pending_applications":  pendingApps,
			"approved_applications": approvedApps,
			"mentor_connections":    connections,
		},
	})
}

// MentorDashboard handles GET /api/dashboard/mentor
func (s *Server) MentorDashboard(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}
	if user.Role != models.RoleMentor {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Mentor access only"))
	}
	ctx := c.Context()

	matches, err := s.matchRepo.ListByMentor(ctx, user.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	pending, err := s.matchRepo.ListPendingByMentor(ctx, user.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	resources, err := s.resourceRepo.ListByUploader(ctx, user.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	mentees, err := s.userRepo.ListByRole(ctx, models.RoleMember)
	if err != nil {
		return respondServiceError(c, err)
	}

	accepted := 0
	for _, m := range matches {
		if m.Status == models.MatchStatusAccepted {
			accepted++
		}
	}

	return c.JSON(fiber.Map{
		"user":              user,
		"mentor_matches":    matches,
		"pending_requests":  pending,
		"shared_resources":  resources,
		"potential_mentees": mentees,
		"stats": fiber.Map{
			"total_mentees":    accepted,
			"pending_requests": len(pending),
			"resources_shared": len(resources),
		},
	})
}

// GetMentees handles GET /api/dashboard/mentees (mentor only)
func (s *Server) GetMentees(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(models.Role)
	if role != models.RoleMentor {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Mentor access only"))
	}

	mentees, err := s.userRepo.ListByRole(c.Context(), models.RoleMember)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mentees)
}

// GetMenteeVentures handles GET /api/dashboard/mentees/:id/ventures (mentor only)
func (s *Server) GetMenteeVentures(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(models.Role)
	if role != models.RoleMentor {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Mentor access only"))
	}

	menteeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	mentee, err := s.userRepo.GetByID(c.Context(), menteeID)
	if err != nil || mentee.Role != models.RoleMember {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Mentee", menteeID))
	}

	ventures, err := s.ventureRepo.ListByMember(c.Context(), menteeID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(ventures)
}
