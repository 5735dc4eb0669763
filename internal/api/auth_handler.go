package api

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"pos-service/internal/entity"
	"pos-service/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Signup registers a user --> POST /auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	body := credentialsRequest{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	user, err := h.authService.Register(ctx, body.Username, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrDuplicateUsername),
			errors.Is(err, service.ErrDuplicateEmail):
			return c.JSON(400, map[string]string{"error": err.Error()})
		default:
			return c.JSON(500, map[string]string{"error": "Registration failed"})
		}
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Registration failed"})
	}

	return c.JSON(201, authResponse{Token: token, User: user})
}

// Login authenticates a user --> POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	body := credentialsRequest{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	token, user, err := h.authService.Login(ctx, body.Username, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return c.JSON(400, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(401, map[string]string{"error": err.Error()})
		default:
			return c.JSON(500, map[string]string{"error": "Login failed"})
		}
	}

	return c.JSON(200, authResponse{Token: token, User: user})
}

// Verify validates a bearer token --> GET /auth/verify
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, err := h.authService.Verify(bearerToken(c))
	if err != nil {
		return c.JSON(401, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]interface{}{
		"valid": true,
		"user": map[string]interface{}{
			"user_id":  claims.UserID,
			"username": claims.Username,
		},
	})
}

// Me returns the authenticated user's profile --> GET /auth/me
// The echo-jwt middleware has already validated the token.
func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(401, map[string]string{"error": service.ErrTokenMissing.Error()})
	}
	claims, ok := token.Claims.(*service.Claims)
	if !ok {
		return c.JSON(401, map[string]string{"error": service.ErrTokenInvalid.Error()})
	}

	user, err := h.authService.GetUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return c.JSON(404, map[string]string{"error": "User not found"})
	}

	return c.JSON(200, user)
}

// ListUsers returns all registered users --> GET /users
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Failed to list users"})
	}

	result := make([]*entity.User, 0, len(users))
	result = append(result, users...)
	return c.JSON(200, result)
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
