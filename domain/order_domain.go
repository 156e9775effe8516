package domain

import (
	"errors"
	"time"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
	OrderStatusPaid      = "Paid"
)

// OrderStatuses is the full status vocabulary. Any value in it can be
// written from any prior state; there is no enforced state machine.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusPaid,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var (
	MessageSuccessCheckout          = "Order placed successfully!"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessUpdateOrderStatus = "Order status updated successfully!"

	MessageFailedCheckout          = "failed to place order"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrCartEmpty          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid status")
)

type (
	CheckoutResponse struct {
		OrderID    string  `json:"order_id"`
		TotalPrice float64 `json:"total_price"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	OrderResponse struct {
		ID         string    `json:"id"`
		TotalPrice float64   `json:"total_price"`
		Status     string    `json:"status"`
		CreatedAt  time.Time `json:"created_at"`
		// Comma-joined product names of the order's line items.
		Products string `json:"products"`
	}

	AdminOrderResponse struct {
		ID         string    `json:"id"`
		Customer   string    `json:"customer"`
		TotalPrice float64   `json:"total_price"`
		Status     string    `json:"status"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
