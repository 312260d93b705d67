package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// CreateConversation opens (or returns the existing) conversation between the
// caller and another user.
//
// @Summary      Create conversation
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body  createConversationRequest  true  "Other participant"
// @Success      201  {object}  domain.Conversation
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /conversations [post]
func (h *MessageHandler) CreateConversation(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conversation, err := h.messageService.CreateConversation(c.Request().Context(), userID, req.ParticipantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, conversation)
}

// ListConversations returns the caller's conversations, most recent first.
//
// @Summary      List conversations
// @Tags         messages
// @Produce      json
// @Success      200  {array}  domain.Conversation
// @Security     BearerAuth
// @Router       /conversations [get]
func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	conversations, err := h.messageService.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conversations)
}

// ListMessages returns a conversation's messages in chronological order.
//
// @Summary      List messages
// @Tags         messages
// @Produce      json
// @Param        id  path  string  true  "Conversation id"
// @Success      200  {array}   domain.Message
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /conversations/{id}/messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	messages, err := h.messageService.ListMessages(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Send appends a message to a conversation and notifies its participants.
//
// @Summary      Send message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Conversation id"
// @Param        body  body  sendMessageRequest  true  "Message content"
// @Success      201  {object}  domain.Message
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /conversations/{id}/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.Send(c.Request().Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, message)
}
