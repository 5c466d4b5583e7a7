package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	log            zerolog.Logger
}

func NewPaymentHandler(paymentService service.PaymentService, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		log:            log,
	}
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Missing required payment parameters",
		})
	}

	result, err := h.paymentService.ChargeCard(ctx, &req)
	if err != nil {
		var procErr *client.ProcessorError
		switch {
		case errors.Is(err, service.ErrMissingPaymentParams):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "Missing required payment parameters",
			})
		case errors.Is(err, client.ErrPaymentLocationNotConfigured):
			h.log.Error().Err(err).Msg("payment configuration incomplete")
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"error":   "Payment configuration is incomplete",
			})
		case errors.As(err, &procErr):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   procErr.Error(),
			})
		}
		h.log.Error().Err(err).Msg("payment error")
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, &dto.CreatePaymentResponse{
		Success: true,
		Payment: *result,
	})
}
