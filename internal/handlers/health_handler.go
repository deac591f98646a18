package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/database"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := database.Ping(h.db); err != nil {
		logError(c, "health check failed", err)
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(dto.Fail("Database unavailable.", nil))
	}
	return c.JSON(dto.OK("OK", fiber.Map{"status": "healthy"}))
}
