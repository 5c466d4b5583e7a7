package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/service"
)

type ContactHandler struct {
	contactService service.ContactService
	log            zerolog.Logger
}

func NewContactHandler(contactService service.ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		log:            log,
	}
}

func (h *ContactHandler) SubmitContact(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing required fields",
		})
	}

	id, err := h.contactService.Submit(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingContactFields) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Missing required fields",
			})
		}
		h.log.Error().Err(err).Msg("contact form error")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to submit contact form",
		})
	}

	return c.JSON(http.StatusOK, &dto.ContactResponse{
		Message: "Contact form submitted successfully",
		ID:      id,
	})
}
