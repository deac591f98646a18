package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListAll(c *fiber.Ctx) error {
	users, err := h.userService.ListAll()
	if err != nil {
		logError(c, "failed to list users", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch users.", nil))
	}
	return c.JSON(dto.OK("Users fetched successfully.", users))
}

func (h *UserHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.userService.Stats()
	if err != nil {
		logError(c, "failed to compute stats", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch stats.", nil))
	}
	return c.JSON(dto.OK("Stats fetched successfully.", stats))
}
