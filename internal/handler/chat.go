package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/service"
)

type ChatHandler struct {
	chatService service.ChatService
	log         zerolog.Logger
}

func NewChatHandler(chatService service.ChatService, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		log:         log,
	}
}

func (h *ChatHandler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request payload",
		})
	}

	reply, err := h.chatService.Reply(ctx, req.Messages)
	if err != nil {
		if errors.Is(err, service.ErrMissingChatMessages) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}
		h.log.Error().Err(err).Msg("chat error")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate response.",
		})
	}

	return c.JSON(http.StatusOK, &dto.ChatResponse{Reply: reply})
}
