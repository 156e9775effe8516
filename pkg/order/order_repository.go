package order

import (
	"context"
	"time"

	"agrimarket-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRow struct {
		ID         uuid.UUID
		TotalPrice float64
		Status     string
		CreatedAt  time.Time
		Products   string
	}

	AdminOrderRow struct {
		ID         uuid.UUID
		Customer   string
		TotalPrice float64
		Status     string
		CreatedAt  time.Time
	}

	OrderRepository interface {
		CreateOrderWithItems(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error
		GetOrdersByUserID(ctx context.Context, userID string) ([]OrderRow, error)
		GetAllOrders(ctx context.Context) ([]AdminOrderRow, error)
		GetOrderForUser(ctx context.Context, orderID string, userID string) (*entities.Order, error)
		GetOrderItemProductNames(ctx context.Context, orderID string) ([]string, error)
		UpdateOrderStatus(ctx context.Context, orderID string, status string) (int64, error)
		UpdateOrderStatusForUser(ctx context.Context, orderID string, userID string, status string) (int64, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrderWithItems commits the order, its line items, and the cart clear
// as one transaction: either the whole checkout lands or none of it does.
func (r *orderRepository) CreateOrderWithItems(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", order.UserID).Delete(&entities.CartItem{}).Error
	})
}

func (r *orderRepository) GetOrdersByUserID(ctx context.Context, userID string) ([]OrderRow, error) {
	var rows []OrderRow
	if err := r.db.WithContext(ctx).
		Table("orders o").
		Select("o.id, o.total_price, o.status, o.created_at, string_agg(p.name, ', ') AS products").
		Joins("JOIN order_items oi ON o.id = oi.order_id").
		Joins("JOIN products p ON oi.product_id = p.id").
		Where("o.user_id = ?", userID).
		Group("o.id").
		Order("o.created_at desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *orderRepository) GetAllOrders(ctx context.Context) ([]AdminOrderRow, error) {
	var rows []AdminOrderRow
	if err := r.db.WithContext(ctx).
		Table("orders o").
		Select("o.id, u.name AS customer, o.total_price, o.status, o.created_at").
		Joins("JOIN users u ON o.user_id = u.id").
		Order("o.created_at desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *orderRepository) GetOrderForUser(ctx context.Context, orderID string, userID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrderItemProductNames(ctx context.Context, orderID string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Table("order_items oi").
		Joins("JOIN products p ON oi.product_id = p.id").
		Where("oi.order_id = ?", orderID).
		Pluck("p.name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) UpdateOrderStatusForUser(ctx context.Context, orderID string, userID string, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Update("status", status)
	return result.RowsAffected, result.Error
}
