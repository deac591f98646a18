package services

import (
	"fmt"

	"github.com/lunarcommerce/lunar-backend/internal/dto"
	"github.com/lunarcommerce/lunar-backend/internal/models"
	"gorm.io/gorm"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create validates stock for every line, then inserts the order followed
// by its items. The inserts are deliberately not wrapped in a
// transaction; a crash mid-way leaves an order without some items, which
// admin tooling surfaces, and stock is only re-checked, never reserved.
func (s *OrderService) Create(userID uint, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var total float64
	products := make(map[uint]*models.Product, len(req.Items))

	for _, item := range req.Items {
		var product models.Product
		if err := s.db.First(&product, "id = ?", item.ProductID).Error; err != nil {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, item.ProductID)
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("%w for product %s: available %d, requested %d",
				ErrInsufficientStock, product.Name, product.Stock, item.Quantity)
		}
		products[item.ProductID] = &product
		total += float64(item.Quantity) * item.Price
	}

	order := models.Order{
		UserID:     userID,
		TotalPrice: total,
		Status:     models.StatusPending,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range req.Items {
		record := models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
		record.Product = *products[item.ProductID]
		order.Items = append(order.Items, record)
	}

	resp := dto.NewOrderResponse(&order)
	return &resp, nil
}

// GetByID returns an order to its owner or to an admin.
func (s *OrderService) GetByID(orderID, requesterID uint, requesterRole models.Role) (*dto.OrderResponse, error) {
	var order models.Order
	err := s.db.Preload("Items.Product").Preload("User").
		First(&order, "id = ?", orderID).Error
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if requesterRole != models.RoleAdmin && order.UserID != requesterID {
		return nil, ErrForbidden
	}

	resp := dto.NewOrderResponse(&order)
	return &resp, nil
}

func (s *OrderService) ListByUser(userID uint) ([]dto.OrderResponse, error) {
	var orders []models.Order
	err := s.db.Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return projectOrders(orders), nil
}

func (s *OrderService) ListAll() ([]dto.OrderResponse, error) {
	var orders []models.Order
	err := s.db.Preload("Items.Product").Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return projectOrders(orders), nil
}

func (s *OrderService) UpdateStatus(orderID uint, status models.OrderStatus) (*dto.OrderResponse, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		return nil, ErrOrderNotFound
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return s.GetByID(orderID, order.UserID, models.RoleAdmin)
}

func projectOrders(orders []models.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	return out
}
