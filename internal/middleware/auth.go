package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/config"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
)

// JWTProtected verifies the Bearer access token. A missing token is 401;
// a present but invalid or expired one is 403. The response never says
// which failure occurred beyond that split.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).
					JSON(dto.Fail("Access denied. No token provided.", nil))
			}
			return c.Status(fiber.StatusForbidden).
				JSON(dto.Fail("Invalid or expired token.", nil))
		},
	})
}
