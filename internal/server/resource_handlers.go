package server

import (
	"healthhub/internal/models"
	"healthhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateResourceCategory handles POST /api/resources/categories
func (s *Server) CreateResourceCategory(c *fiber.Ctx) error {
	var req struct {
		CategoryName string `json:"category_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CategoryName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Category name is required"))
	}

	category := &models.ResourceCategory{
		CategoryName: validation.SanitizeString(req.CategoryName),
	}
	if err := s.resourceRepo.CreateCategory(c.Context(), category); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// GetResourceCategories handles GET /api/resources/categories
func (s *Server) GetResourceCategories(c *fiber.Ctx) error {
	categories, err := s.resourceRepo.ListCategories(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(categories)
}

type resourceRequest struct {
	CategoryID  uint   `json:"category_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"omitempty,url"`
}

// CreateResource handles POST /api/resources
func (s *Server) CreateResource(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req resourceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	// Referenced category must exist.
	if _, err := s.resourceRepo.GetCategoryByID(c.Context(), req.CategoryID); err != nil {
		return respondServiceError(c, err)
	}

	resource := &models.Resource{
		CategoryID:   req.CategoryID,
		UploadedByID: userID,
		Title:        validation.SanitizeString(req.Title),
		Description:  req.Description,
		URL:          req.URL,
	}
	if err := s.resourceRepo.Create(c.Context(), resource); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resource)
}

// GetResources handles GET /api/resources with optional category filter and paging.
func (s *Server) GetResources(c *fiber.Ctx) error {
	p := parsePagination(c, 100)

	var categoryID *uint
	if cid := c.QueryInt("category_id", 0); cid > 0 {
		id := uint(cid)
		categoryID = &id
	}

	resources, err := s.resourceRepo.List(c.Context(), p.Limit, p.Offset, categoryID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(resources)
}

// GetResource handles GET /api/resources/:id
func (s *Server) GetResource(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	resource, err := s.resourceRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(resource)
}

// UpdateResource handles PUT /api/resources/:id (uploader only)
func (s *Server) UpdateResource(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	resource, err := s.resourceRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if resource.UploadedByID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Not authorized to update this resource"))
	}

	var req struct {
		CategoryID  *uint   `json:"category_id"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		URL         *string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.CategoryID != nil {
		if _, err := s.resourceRepo.GetCategoryByID(c.Context(), *req.CategoryID); err != nil {
			return respondServiceError(c, err)
		}
		resource.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		if *req.Title == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Title cannot be empty"))
		}
		resource.Title = validation.SanitizeString(*req.Title)
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}
	if req.URL != nil {
		resource.URL = *req.URL
	}

	if err := s.resourceRepo.Update(c.Context(), resource); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(resource)
}

// DeleteResource handles DELETE /api/resources/:id (uploader only)
func (s *Server) DeleteResource(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	resource, err := s.resourceRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if resource.UploadedByID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Not authorized to delete this resource"))
	}

	if err := s.resourceRepo.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Resource deleted successfully"})
}
