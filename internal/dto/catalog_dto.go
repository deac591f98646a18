package dto

import (
	"errors"
	"time"

	"github.com/lunarcommerce/lunar-backend/internal/models"
)

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	Gender      string  `json:"gender"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       *int    `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

func (r *CreateProductRequest) Validate() error {
	if r.Name == "" || r.Brand == "" || r.Description == "" || r.Gender == "" ||
		r.Category == "" || r.Price == 0 || r.Stock == nil || r.ImageURL == "" {
		return errors.New("all fields are required")
	}
	if !models.Gender(r.Gender).Valid() {
		return errors.New("invalid gender. Must be men, women, or kids")
	}
	if r.Price < 0 || *r.Stock < 0 {
		return errors.New("price and stock must not be negative")
	}
	return nil
}

// UpdateProductRequest uses pointers so omitted fields stay untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Brand       *string  `json:"brand"`
	Description *string  `json:"description"`
	Gender      *string  `json:"gender"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	ImageURL    *string  `json:"image_url"`
}

func (r *UpdateProductRequest) Validate() error {
	if r.Gender != nil && !models.Gender(*r.Gender).Valid() {
		return errors.New("invalid gender. Must be men, women, or kids")
	}
	if r.Price != nil && *r.Price < 0 {
		return errors.New("price must not be negative")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Gender      string  `json:"gender"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	InStock     bool    `json:"inStock"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Description: p.Description,
		Gender:      string(p.Gender),
		Category:    p.Category.Name,
		Stock:       p.Stock,
		Image:       p.ImageURL,
		InStock:     p.Stock > 0,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type CreateCategoryRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

func (r *CreateCategoryRequest) Validate() error {
	if r.Name == "" || r.Gender == "" {
		return errors.New("name and gender are required")
	}
	if !models.Gender(r.Gender).Valid() {
		return errors.New("invalid gender. Must be men, women, or kids")
	}
	return nil
}

type CategoryResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Gender: string(c.Gender)}
}
