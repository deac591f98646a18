package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"github.com/lunarcommerce/lunar-backend/internal/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List()
	if err != nil {
		logError(c, "failed to list categories", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch categories.", nil))
	}
	return c.JSON(dto.OK("Categories fetched successfully.", categories))
}

func (h *CategoryHandler) NamesByGender(c *fiber.Ctx) error {
	gender := models.Gender(c.Params("gender"))
	if !gender.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid gender.", nil))
	}

	names, err := h.categoryService.NamesByGender(gender)
	if err != nil {
		logError(c, "failed to list category names", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch categories.", nil))
	}
	return c.JSON(dto.OK("Categories fetched successfully.", names))
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error(), nil))
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			return c.Status(fiber.StatusConflict).
				JSON(dto.Fail("Category already exists for this gender.", nil))
		}
		logError(c, "failed to create category", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to create category.", nil))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Category created successfully.", category))
}
