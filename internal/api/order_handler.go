package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"pos-service/internal/entity"
	"pos-service/internal/service"
)

// customerOnline is the order type the staff dashboard polls for.
const customerOnline = "customer_online"

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListCards returns every pending order for the kitchen cards view --> GET /cards
func (h *OrderHandler) ListCards(c echo.Context) error {
	orders, err := h.orderService.ListPendingOrders(c.Request().Context(), "")
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Failed to list orders"})
	}
	return c.JSON(200, orders)
}

// ListOrders returns pending customer_online orders --> GET /api/orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.ListPendingOrders(c.Request().Context(), customerOnline)
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Failed to list orders"})
	}
	return c.JSON(200, orders)
}

// SubmitOrder records a nested order submission --> POST /api/submit-order
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	req := entity.SubmitOrderRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	order, err := h.orderService.SubmitOrder(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidPrice):
			return c.JSON(400, map[string]string{"error": err.Error()})
		default:
			return c.JSON(500, map[string]string{"error": "Failed to submit order"})
		}
	}

	return c.JSON(201, map[string]string{"order_id": order.OrderID})
}
