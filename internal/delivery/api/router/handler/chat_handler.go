package handler

import (
	"net/http"

	"aiclub/internal/delivery/api/response"
	"aiclub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ChatHandler answers FAQ chat messages.
type ChatHandler struct {
	faq usecase.FAQUsecase
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(faq usecase.FAQUsecase) *ChatHandler {
	return &ChatHandler{faq: faq}
}

// ChatRequest represents one chat message.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// Chat returns the canned answer for a message.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.faq.Answer(req.Message))
}
