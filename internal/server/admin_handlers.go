package server

import (
	"healthhub/internal/models"
	"healthhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PlatformMetrics handles GET /api/admin/dashboard/metrics
func (s *Server) PlatformMetrics(c *fiber.Ctx) error {
	ctx := c.Context()
	db := s.db.WithContext(ctx)

	var (
		totalUsers, approvedUsers, pendingApprovals   int64
		admins, mentors, members                      int64
		totalVentures                                 int64
		totalApplications, pendingApps, approvedApps  int64
		totalMatches, activeMatches                   int64
		totalPrograms, activePrograms, totalResources int64
	)

	counts := []struct {
		dest  *int64
		model interface{}
		query []interface{}
	}{
		{&totalUsers, &models.User{}, nil},
		{&approvedUsers, &models.User{}, []interface{}{"is_approved = ?", true}},
		{&pendingApprovals, &models.User{}, []interface{}{"is_approved = ?", false}},
		{&admins, &models.User{}, []interface{}{"role = ?", models.RoleAdmin}},
		{&mentors, &models.User{}, []interface{}{"role = ?", models.RoleMentor}},
		{&members, &models.User{}, []interface{}{"role = ?", models.RoleMember}},
		{&totalVentures, &models.Venture{}, nil},
		{&totalApplications, &models.Application{}, nil},
		{&pendingApps, &models.Application{}, []interface{}{"status = ?", models.ApplicationStatusSubmitted}},
		{&approvedApps, &models.Application{}, []interface{}{"status = ?", models.ApplicationStatusApproved}},
		{&totalMatches, &models.MentorMatch{}, nil},
		{&activeMatches, &models.MentorMatch{}, []interface{}{"status = ?", models.MatchStatusAccepted}},
		{&totalPrograms, &models.Program{}, nil},
		{&activePrograms, &models.Program{}, []interface{}{"is_active = ?", 1}},
		{&totalResources, &models.Resource{}, nil},
	}
	for _, cnt := range counts {
		q := db.Model(cnt.model)
		if cnt.query != nil {
			q = q.Where(cnt.query[0], cnt.query[1:]...)
		}
		if err := q.Count(cnt.dest).Error; err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
	}

	return c.JSON(fiber.Map{
		"users": fiber.Map{
			"total":            totalUsers,
			"approved":         approvedUsers,
			"pending_approval": pendingApprovals,
			"admins":           admins,
			"mentors":          mentors,
			"members":          members,
		},
		"ventures": fiber.Map{
			"total": totalVentures,
		},
		"applications": fiber.Map{
			"total":    totalApplications,
			"pending":  pendingApps,
			"approved": approvedApps,
		},
		"mentor_matches": fiber.Map{
			"total":  totalMatches,
			"active": activeMatches,
		},
		"programs": fiber.Map{
			"total":  totalPrograms,
			"active": activePrograms,
		},
		"resources": fiber.Map{
			"total": totalResources,
		},
	})
}

// GetPendingUsers handles GET /api/admin/users/pending
func (s *Server) GetPendingUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.ListPendingApproval(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// ApproveUser handles PUT /api/admin/users/:id/approve
func (s *Server) ApproveUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	user.IsApproved = true
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// RejectUser handles PUT /api/admin/users/:id/reject; rejection deletes the account.
func (s *Server) RejectUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	adminID := c.Locals("userID").(uint)
	if id == adminID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot reject your own account"))
	}

	if _, err := s.userRepo.GetByID(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	if err := s.userRepo.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User account rejected and deleted"})
}

// AdminUpdateUser handles PUT /api/admin/users/:id
func (s *Server) AdminUpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	var req struct {
		FirstName      *string `json:"first_name"`
		LastName       *string `json:"last_name"`
		Email          *string `json:"email"`
		Role           *string `json:"role"`
		IsApproved     *bool   `json:"is_approved"`
		ProfileDetails *string `json:"profile_details"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.FirstName != nil {
		user.FirstName = validation.SanitizeString(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = validation.SanitizeString(*req.LastName)
	}
	if req.Email != nil {
		if err := validation.ValidateEmail(*req.Email); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid role"))
		}
		user.Role = role
	}
	if req.IsApproved != nil {
		user.IsApproved = *req.IsApproved
	}
	if req.ProfileDetails != nil {
		user.ProfileDetails = *req.ProfileDetails
	}

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// AdminDeleteUser handles DELETE /api/admin/users/:id
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	adminID := c.Locals("userID").(uint)
	if id == adminID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot deactivate your own account"))
	}

	if _, err := s.userRepo.GetByID(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	if err := s.userRepo.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deactivated successfully"})
}

// GetAllApplications handles GET /api/admin/applications
func (s *Server) GetAllApplications(c *fiber.Ctx) error {
	apps, err := s.applicationService.ListAll(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(apps)
}

// ReviewApplication handles PUT /api/admin/applications/:id/review
func (s *Server) ReviewApplication(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	admin, err := s.currentUser(c)
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
	if req.Status == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status is required"))
	}

	app, err := s.applicationService.Review(c.Context(), admin, id, models.ApplicationStatus(req.Status))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(app)
}
