package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"pos-service/internal/entity"
	"pos-service/internal/service"
)

type MenuHandler struct {
	menuService *service.MenuService
}

func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListMenuItems returns the catalog --> GET /api/menu-items
func (h *MenuHandler) ListMenuItems(c echo.Context) error {
	items, err := h.menuService.ListMenuItems(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Failed to list menu items"})
	}
	return c.JSON(200, items)
}

// AddMenuItem creates a catalog entry --> POST /api/menu-items
func (h *MenuHandler) AddMenuItem(c echo.Context) error {
	req := entity.AddMenuItemRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	item, err := h.menuService.AddMenuItem(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidPrice):
			return c.JSON(400, map[string]string{"error": err.Error()})
		default:
			return c.JSON(500, map[string]string{"error": "Failed to add menu item"})
		}
	}

	return c.JSON(201, item)
}

// RemoveMenuItem deletes a catalog entry --> DELETE /api/menu-items/:id
func (h *MenuHandler) RemoveMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	err = h.menuService.RemoveMenuItem(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			return c.JSON(404, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": "Failed to remove menu item"})
	}

	return c.JSON(200, map[string]string{"message": "Menu item removed"})
}
