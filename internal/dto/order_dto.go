package dto

import (
	"errors"
	"time"

	"github.com/lunarcommerce/lunar-backend/internal/models"
)

type OrderItemRequest struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

func (r *CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return errors.New("order items are required")
	}
	for _, item := range r.Items {
		if item.ProductID == 0 || item.Quantity <= 0 || item.Price <= 0 {
			return errors.New("each item must have productId, quantity, and price")
		}
	}
	return nil
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderItemResponse struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderResponse struct {
	ID        uint                `json:"id"`
	UserID    uint                `json:"userId"`
	UserName  string              `json:"userName,omitempty"`
	UserEmail string              `json:"userEmail,omitempty"`
	Total     float64             `json:"total"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt string              `json:"createdAt"`
}

// NewOrderResponse projects an order with preloaded items and products.
// User name/email are only present when the user association is loaded
// (admin listings).
func NewOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Brand:     item.Product.Brand,
			Image:     item.Product.ImageURL,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		UserName:  o.User.Name,
		UserEmail: o.User.Email,
		Total:     o.TotalPrice,
		Status:    string(o.Status),
		Items:     items,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type StatsResponse struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
