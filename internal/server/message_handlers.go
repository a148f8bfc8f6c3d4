package server

import (
	"healthhub/internal/middleware"
	"healthhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /api/messages
func (s *Server) SendMessage(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		ReceiverID uint   `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ReceiverID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Receiver ID is required"))
	}

	msg, err := s.messageService.Send(c.Context(), user, req.ReceiverID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.MessagesSentTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetMyMessages handles GET /api/messages; every message the caller sent or
// received, newest first.
func (s *Server) GetMyMessages(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	messages, err := s.messageService.Inbox(c.Context(), user)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(messages)
}

// GetConversation handles GET /api/messages/conversation/:userId
func (s *Server) GetConversation(c *fiber.Ctx) error {
	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	messages, err := s.messageService.Conversation(c.Context(), user, otherID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(messages)
}

// GetMessage handles GET /api/messages/:id
func (s *Server) GetMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	msg, err := s.messageService.Get(c.Context(), user, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(msg)
}

// UpdateMessage handles PUT /api/messages/:id. The only mutable field is the
// read flag, settable by the receiver; content is immutable after creation.
func (s *Server) UpdateMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		IsRead *bool `json:"is_read"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.IsRead == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_read is required"))
	}

	msg, err := s.messageService.MarkRead(c.Context(), user, id, *req.IsRead)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(msg)
}

// DeleteMessage handles DELETE /api/messages/:id (sender only)
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	if err := s.messageService.Delete(c.Context(), user, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Message deleted successfully"})
}
