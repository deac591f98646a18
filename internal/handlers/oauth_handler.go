package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/config"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/middleware"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"github.com/lunarcommerce/lunar-backend/internal/services"
)

type OAuthHandler struct {
	oauthService *services.OAuthService
	appleJWKS    *services.AppleJWKSClient
	cfg          *config.Config
}

func NewOAuthHandler(oauthService *services.OAuthService, appleJWKS *services.AppleJWKSClient, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{oauthService: oauthService, appleJWKS: appleJWKS, cfg: cfg}
}

func (h *OAuthHandler) GoogleCallback(c *fiber.Ctx) error {
	var req dto.GoogleCallbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.Fail("Email is required from Google account.", nil))
	}

	resp, err := h.oauthService.SignIn(services.SocialProfile{
		Provider:   models.ProviderGoogle,
		ProviderID: req.ID,
		Email:      req.Email,
		Name:       req.Name,
		Picture:    req.Picture,
	})
	if err != nil {
		return h.signInError(c, "Google", err)
	}

	return c.JSON(dto.OK("Google login successful.", resp))
}

// AppleCallback accepts either a pre-verified profile assertion or a raw
// identity token. With a token and a configured bundle id, the JWKS
// verification runs here, before the bridge sees the profile.
func (h *OAuthHandler) AppleCallback(c *fiber.Ctx) error {
	var req dto.AppleCallbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}

	if req.IdentityToken != "" && h.cfg.AppleBundleID != "" {
		claims, err := h.appleJWKS.VerifyToken(req.IdentityToken, h.cfg.AppleBundleID)
		if err != nil {
			logError(c, "apple identity token verification failed", err)
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("Apple authentication failed.", nil))
		}
		req.Sub = claims.Sub
		if claims.Email != "" {
			req.Email = claims.Email
		}
	}

	if req.Email == "" || req.Sub == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.Fail("Email and user ID are required from Apple account.", nil))
	}

	resp, err := h.oauthService.SignIn(services.SocialProfile{
		Provider:   models.ProviderApple,
		ProviderID: req.Sub,
		Email:      req.Email,
		Name:       req.Name,
		Picture:    req.Picture,
	})
	if err != nil {
		return h.signInError(c, "Apple", err)
	}

	return c.JSON(dto.OK("Apple login successful.", resp))
}

func (h *OAuthHandler) LinkSocial(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized.", nil))
	}

	var req dto.LinkSocialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}

	provider := models.OAuthProvider(req.Provider)
	if err := h.oauthService.LinkAccount(userID, provider, req.ID, req.Picture); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProvider):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid OAuth provider.", nil))
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found.", nil))
		}
		logError(c, "link social account failed", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to link social account.", nil))
	}

	return c.JSON(dto.OK(req.Provider+" account linked successfully.", nil))
}

func (h *OAuthHandler) signInError(c *fiber.Ctx, provider string, err error) error {
	if errors.Is(err, services.ErrMissingProviderField) {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.Fail("Required fields are missing from the "+provider+" account.", nil))
	}
	logError(c, "oauth sign-in failed", err)
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.Fail(provider+" authentication failed.", nil))
}
