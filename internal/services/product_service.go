package services

import (
	"fmt"
	"strings"

	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) List() ([]dto.ProductResponse, error) {
	var products []models.Product
	err := s.db.Preload("Category").Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return projectProducts(products), nil
}

func (s *ProductService) GetByID(id uint) (*dto.ProductResponse, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, ErrProductNotFound
	}
	resp := dto.NewProductResponse(&product)
	return &resp, nil
}

func (s *ProductService) ListByGender(gender models.Gender) ([]dto.ProductResponse, error) {
	var products []models.Product
	err := s.db.Preload("Category").
		Where("gender = ?", gender).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return projectProducts(products), nil
}

func (s *ProductService) ListByGenderAndCategory(gender models.Gender, category string) ([]dto.ProductResponse, error) {
	var products []models.Product
	err := s.db.Preload("Category").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.gender = ? AND categories.name = ?", gender, category).
		Order("products.created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return projectProducts(products), nil
}

// Search matches name, brand, and description, case-insensitive.
func (s *ProductService) Search(query string) ([]dto.ProductResponse, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	var products []models.Product
	err := s.db.Preload("Category").
		Where("name ILIKE ? OR brand ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return projectProducts(products), nil
}

func (s *ProductService) Create(req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := s.resolveCategory(req.Category, models.Gender(req.Gender))
	if err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		Gender:      models.Gender(req.Gender),
		CategoryID:  category.ID,
		Category:    *category,
		Price:       req.Price,
		Stock:       *req.Stock,
		ImageURL:    req.ImageURL,
	}
	if err := s.db.Omit("Category").Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	resp := dto.NewProductResponse(&product)
	return &resp, nil
}

func (s *ProductService) Update(id uint, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, ErrProductNotFound
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
		product.Gender = models.Gender(*req.Gender)
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Category != nil {
		category, err := s.resolveCategory(*req.Category, product.Gender)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
		product.Category = *category
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	resp := dto.NewProductResponse(&product)
	return &resp, nil
}

func (s *ProductService) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// resolveCategory finds the (name, gender) category, creating it on the
// fly for admin product writes.
func (s *ProductService) resolveCategory(name string, gender models.Gender) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("name = ? AND gender = ?", name, gender).First(&category).Error
	if err == nil {
		return &category, nil
	}

	category = models.Category{Name: name, Gender: gender}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func projectProducts(products []models.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductResponse(&products[i]))
	}
	return out
}
