package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/middleware"
	"github.com/lunarcommerce/lunar-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error(), nil))
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).
				JSON(dto.Fail("This email is already registered. Please login or use a different email.", nil))
		}
		logError(c, "registration failed", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("An error occurred during registration.", nil))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK("User registered successfully.", resp))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error(), nil))
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("Invalid email or password.", nil))
		}
		logError(c, "login failed", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("An error occurred during login.", nil))
	}

	return c.JSON(dto.OK("Login successful.", resp))
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}
	if req.RefreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Refresh token is required.", nil))
	}

	resp, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("Invalid or expired refresh token.", nil))
		}
		logError(c, "token refresh failed", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to refresh token.", nil))
	}

	return c.JSON(dto.OK("Token refreshed successfully.", resp))
}

// Logout is idempotent: revoking an unknown or already-revoked token
// still answers 200.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}

	if req.RefreshToken != "" {
		if err := h.authService.Logout(req.RefreshToken); err != nil {
			logError(c, "logout failed", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Fail("Failed to logout.", nil))
		}
	}

	return c.JSON(dto.OK("Logged out successfully.", nil))
}

func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized.", nil))
	}

	if err := h.authService.LogoutAll(userID); err != nil {
		logError(c, "logout-all failed", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to logout from all devices.", nil))
	}

	return c.JSON(dto.OK("Logged out from all devices.", nil))
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized.", nil))
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found.", nil))
		}
		logError(c, "profile lookup failed", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("An error occurred while retrieving profile.", nil))
	}

	return c.JSON(dto.OK("Profile retrieved successfully.", user))
}
