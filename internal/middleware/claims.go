package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lunarcommerce/lunar-backend/internal/models"
)

func contextClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// CurrentUserID extracts the authenticated user's id from the verified
// access token in context.
func CurrentUserID(c *fiber.Ctx) (uint, error) {
	claims, err := contextClaims(c)
	if err != nil {
		return 0, err
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("missing id claim")
	}
	return uint(id), nil
}

// CurrentUserRole extracts the role claim; an absent claim counts as the
// plain user role.
func CurrentUserRole(c *fiber.Ctx) models.Role {
	claims, err := contextClaims(c)
	if err != nil {
		return models.RoleUser
	}
	role, ok := claims["role"].(string)
	if !ok {
		return models.RoleUser
	}
	return models.Role(role)
}
