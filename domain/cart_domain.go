package domain

import (
	"errors"
)

var (
	MessageSuccessAddToCart      = "Item added to cart successfully!"
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessUpdateCartItem = "cart item quantity updated"
	MessageSuccessRemoveCartItem = "Item removed from cart!"

	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove cart item"

	ErrCartItemNotFound = errors.New("item not found in cart")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

type (
	AddToCartRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	// CartItemResponse reflects the live product price, not a snapshot; the
	// line total can change if the product price changes before checkout.
	CartItemResponse struct {
		ID         string  `json:"id"`
		ProductID  string  `json:"product_id"`
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		Quantity   int     `json:"quantity"`
		TotalPrice float64 `json:"total_price"`
	}

	CartResponse struct {
		Items []CartItemResponse `json:"items"`
		Total float64            `json:"total"`
	}
)
