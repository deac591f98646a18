package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"gorm.io/gorm"
)

// AdminRequired gates a route on the admin role. The claim is checked
// first; a DB lookup backs it up so a role change takes effect without
// waiting out the access token.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail("Unauthorized. Please login first.", nil))
		}

		if CurrentUserRole(c) == models.RoleAdmin {
			return c.Next()
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil && user.Role == models.RoleAdmin {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).
			JSON(dto.Fail("Forbidden. Admin access required.", nil))
	}
}
