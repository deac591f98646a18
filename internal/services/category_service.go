package services

import (
	"fmt"

	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]dto.CategoryResponse, error) {
	var categories []models.Category
	err := s.db.Order("gender, name").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryResponse(&categories[i]))
	}
	return out, nil
}

// NamesByGender returns the distinct category names of one storefront
// section.
func (s *CategoryService) NamesByGender(gender models.Gender) ([]string, error) {
	var names []string
	err := s.db.Model(&models.Category{}).
		Distinct("name").
		Where("gender = ?", gender).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return names, nil
}

func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	gender := models.Gender(req.Gender)

	var existing models.Category
	if err := s.db.Where("name = ? AND gender = ?", req.Name, gender).First(&existing).Error; err == nil {
		return nil, ErrCategoryExists
	}

	category := models.Category{Name: req.Name, Gender: gender}
	if err := s.db.Create(&category).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	resp := dto.NewCategoryResponse(&category)
	return &resp, nil
}
