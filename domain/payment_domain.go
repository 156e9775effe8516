package domain

import (
	"errors"
)

var (
	MessageSuccessCreatePaymentOrder = "payment order created"
	MessageFailedCreatePaymentOrder  = "failed to create payment order"

	ErrInvalidPaymentAmount = errors.New("amount must be positive")
	ErrPaymentGateway       = errors.New("payment gateway error")
)

type (
	CreatePaymentOrderRequest struct {
		Amount   float64 `json:"amount" validate:"required,gt=0"`
		Currency string  `json:"currency" validate:"omitempty,len=3"`
	}

	CreatePaymentOrderResponse struct {
		OrderID string `json:"orderId"`
	}
)
