package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"github.com/lunarcommerce/lunar-backend/internal/services"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.productService.List()
	if err != nil {
		logError(c, "failed to list products", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch products.", nil))
	}
	return c.JSON(dto.OK("Products fetched successfully.", products))
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid product id.", nil))
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Product not found.", nil))
		}
		logError(c, "failed to fetch product", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch product.", nil))
	}
	return c.JSON(dto.OK("Product fetched successfully.", product))
}

func (h *ProductHandler) ListByGender(c *fiber.Ctx) error {
	gender := models.Gender(c.Params("gender"))
	if !gender.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid gender.", nil))
	}

	products, err := h.productService.ListByGender(gender)
	if err != nil {
		logError(c, "failed to list products by gender", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch products.", nil))
	}
	return c.JSON(dto.OK("Products fetched successfully.", products))
}

func (h *ProductHandler) ListByGenderAndCategory(c *fiber.Ctx) error {
	gender := models.Gender(c.Params("gender"))
	if !gender.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid gender.", nil))
	}
	category := c.Params("category")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid category.", nil))
	}

	products, err := h.productService.ListByGenderAndCategory(gender, category)
	if err != nil {
		logError(c, "failed to list products by category", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to fetch products.", nil))
	}
	return c.JSON(dto.OK("Products fetched successfully.", products))
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Search query is required.", nil))
	}

	products, err := h.productService.Search(query)
	if err != nil {
		logError(c, "product search failed", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to search products.", nil))
	}
	return c.JSON(dto.OK("Products fetched successfully.", products))
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error(), nil))
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		logError(c, "failed to create product", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to create product.", nil))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Product created successfully.", product))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid product id.", nil))
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body.", nil))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error(), nil))
	}

	product, err := h.productService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Product not found.", nil))
		}
		logError(c, "failed to update product", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to update product.", nil))
	}
	return c.JSON(dto.OK("Product updated successfully.", product))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid product id.", nil))
	}

	if err := h.productService.Delete(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Product not found.", nil))
		}
		logError(c, "failed to delete product", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.Fail("Failed to delete product.", nil))
	}
	return c.JSON(dto.OK("Product deleted successfully.", nil))
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
