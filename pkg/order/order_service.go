package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"
	"agrimarket-backend/internal/utils/mailing"
	"agrimarket-backend/pkg/cart"
	"agrimarket-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		Checkout(ctx context.Context, userID string) (domain.CheckoutResponse, error)
		GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetAllOrders(ctx context.Context) ([]domain.AdminOrderResponse, error)
		UpdateStatus(ctx context.Context, orderID string, status string) error
		UpdateOwnOrderStatus(ctx context.Context, orderID string, userID string, status string) error
	}

	orderService struct {
		orderRepository OrderRepository
		cartRepository  cart.CartRepository
		userRepository  user.UserRepository
	}
)

func NewOrderService(orderRepository OrderRepository, cartRepository cart.CartRepository, userRepository user.UserRepository) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
		userRepository:  userRepository,
	}
}

// Checkout converts every cart row into one order with snapshot-priced line
// items. The total uses the product price current at call time; stock is not
// decremented or re-validated here.
func (s *orderService) Checkout(ctx context.Context, userID string) (domain.CheckoutResponse, error) {
	lines, err := s.cartRepository.GetCartLines(ctx, userID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	if len(lines) == 0 {
		return domain.CheckoutResponse{}, domain.ErrCartEmpty
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	var total float64
	items := make([]*entities.OrderItem, 0, len(lines))
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
		items = append(items, &entities.OrderItem{
			ID:        uuid.New(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	order := &entities.Order{
		ID:         uuid.New(),
		UserID:     userUUID,
		TotalPrice: total,
		Status:     domain.OrderStatusPending,
	}

	if err := s.orderRepository.CreateOrderWithItems(ctx, order, items); err != nil {
		return domain.CheckoutResponse{}, err
	}

	go s.sendConfirmationMail(userID, order)

	return domain.CheckoutResponse{
		OrderID:    order.ID.String(),
		TotalPrice: order.TotalPrice,
	}, nil
}

func (s *orderService) sendConfirmationMail(userID string, order *entities.Order) {
	owner, err := s.userRepository.GetUserByID(context.Background(), userID)
	if err != nil {
		log.Printf("order %s: confirmation mail skipped: %v", order.ID, err)
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your order <b>%s</b> has been placed. Total: %.2f.</p>",
		owner.Name, order.ID, order.TotalPrice,
	)
	if err := mailing.SendMail(owner.Email, "Order confirmation", body); err != nil {
		log.Printf("order %s: confirmation mail failed: %v", order.ID, err)
	}
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	rows, err := s.orderRepository.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, domain.OrderResponse{
			ID:         row.ID.String(),
			TotalPrice: row.TotalPrice,
			Status:     row.Status,
			CreatedAt:  row.CreatedAt,
			Products:   row.Products,
		})
	}
	return orders, nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]domain.AdminOrderResponse, error) {
	rows, err := s.orderRepository.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.AdminOrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, domain.AdminOrderResponse{
			ID:         row.ID.String(),
			Customer:   row.Customer,
			TotalPrice: row.TotalPrice,
			Status:     row.Status,
			CreatedAt:  row.CreatedAt,
		})
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status string) error {
	if !domain.ValidOrderStatus(status) {
		return domain.ErrInvalidOrderStatus
	}

	affected, err := s.orderRepository.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// UpdateOwnOrderStatus is the self-service path: the write is scoped to the
// caller's own order, so someone else's order id reads as not found.
func (s *orderService) UpdateOwnOrderStatus(ctx context.Context, orderID string, userID string, status string) error {
	if !domain.ValidOrderStatus(status) {
		return domain.ErrInvalidOrderStatus
	}

	if _, err := s.orderRepository.GetOrderForUser(ctx, orderID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	affected, err := s.orderRepository.UpdateOrderStatusForUser(ctx, orderID, userID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
