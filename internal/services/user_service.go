package services

import (
	"fmt"

	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"gorm.io/gorm"
)

// UserService covers admin-facing account queries. Account deletion is
// an external administrative action and has no endpoint here.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListAll() ([]dto.UserResponse, error) {
	var users []models.User
	err := s.db.Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out, nil
}

// Stats aggregates the dashboard counters. Revenue excludes cancelled
// orders.
func (s *UserService) Stats() (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	err := s.db.Model(&models.Order{}).
		Where("status <> ?", models.StatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return stats, nil
}
