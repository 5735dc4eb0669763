package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"pos-service/internal/service"
)

// RegisterRoutes mounts every endpoint on the echo instance.
func RegisterRoutes(e *echo.Echo, auth *AuthHandler, orders *OrderHandler, menu *MenuHandler, jwtSecret string) {
	e.GET("/cards", orders.ListCards)

	e.POST("/auth/signup", auth.Signup)
	e.OPTIONS("/auth/signup", preflight)
	e.POST("/auth/login", auth.Login)
	e.OPTIONS("/auth/login", preflight)
	e.GET("/auth/verify", auth.Verify)

	e.GET("/auth/me", auth.Me, echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return new(service.Claims) },
		SigningKey:    []byte(jwtSecret),
	}))

	e.GET("/users", auth.ListUsers)

	apiGroup := e.Group("/api")
	apiGroup.GET("/menu-items", menu.ListMenuItems)
	apiGroup.POST("/menu-items", menu.AddMenuItem)
	apiGroup.DELETE("/menu-items/:id", menu.RemoveMenuItem)
	apiGroup.GET("/orders", orders.ListOrders)
	apiGroup.POST("/submit-order", orders.SubmitOrder)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "pos-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
}

// preflight answers CORS pre-flight checks with an empty success.
func preflight(c echo.Context) error {
	return c.NoContent(204)
}
