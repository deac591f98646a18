package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/middleware"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"github.com/lunarcommerce/lunar-backend/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized.", nil))
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error(), nil))
	}

	order, err := h.orderService.Create(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error(), nil))
		case errors.Is(err, services.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error(), nil))
		}
		logError(c, "failed to create order", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to create order.", nil))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Order created successfully.", order))
}

func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized.", nil))
	}

	orders, err := h.orderService.ListByUser(userID)
	if err != nil {
		logError(c, "failed to list user orders", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch orders.", nil))
	}
	return c.JSON(dto.OK("Orders fetched successfully.", orders))
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized.", nil))
	}
	role := middleware.CurrentUserRole(c)

	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid order id.", nil))
	}

	order, err := h.orderService.GetByID(orderID, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Order not found.", nil))
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).
				JSON(dto.Fail("You are not allowed to view this order.", nil))
		}
		logError(c, "failed to fetch order", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch order.", nil))
	}
	return c.JSON(dto.OK("Order fetched successfully.", order))
}

func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll()
	if err != nil {
		logError(c, "failed to list orders", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch orders.", nil))
	}
	return c.JSON(dto.OK("Orders fetched successfully.", orders))
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid order id.", nil))
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}

	order, err := h.orderService.UpdateStatus(orderID, models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid order status.", nil))
		case errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Order not found.", nil))
		}
		logError(c, "failed to update order status", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to update order status.", nil))
	}
	return c.JSON(dto.OK("Order status updated successfully.", order))
}
