package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/middleware"
	"greengrow-storefront/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
	log          zerolog.Logger
}

func NewOrderHandler(orderService service.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request payload",
		})
	}

	summary, err := h.orderService.CreateOrder(ctx, middleware.SessionUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingOrderInfo) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Missing required order information",
			})
		}
		h.log.Error().Err(err).Msg("order creation error")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create order",
		})
	}

	return c.JSON(http.StatusOK, &dto.CreateOrderResponse{
		Success: true,
		Order:   *summary,
	})
}

// GetOrders returns one order with ?id=, else the session user's history.
func (h *OrderHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	sessionUserID := middleware.SessionUserID(c)

	if orderID := c.QueryParam("id"); orderID != "" {
		order, err := h.orderService.GetOrder(ctx, sessionUserID, orderID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{
					"error": "Order not found",
				})
			case errors.Is(err, service.ErrForbidden):
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "Unauthorized",
				})
			}
			h.log.Error().Err(err).Msg("order retrieval error")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to retrieve orders",
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"order": dto.OrderDetailFromModel(order),
		})
	}

	orders, err := h.orderService.ListOrders(ctx, sessionUserID)
	if err != nil {
		if errors.Is(err, service.ErrAuthRequired) {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "Authentication required",
			})
		}
		h.log.Error().Err(err).Msg("order retrieval error")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to retrieve orders",
		})
	}

	details := make([]*dto.OrderDetail, len(orders))
	for i, order := range orders {
		details[i] = dto.OrderDetailFromModel(order)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": details,
	})
}
