package domain

import (
	"errors"
)

var (
	MessageSuccessAddToWishlist      = "Added to wishlist!"
	MessageSuccessGetWishlist        = "wishlist retrieved successfully"
	MessageSuccessRemoveFromWishlist = "Removed from wishlist!"

	MessageFailedAddToWishlist      = "failed to add to wishlist"
	MessageFailedGetWishlist        = "failed to retrieve wishlist"
	MessageFailedRemoveFromWishlist = "failed to remove from wishlist"

	ErrAlreadyInWishlist    = errors.New("product already in wishlist")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)

type (
	AddToWishlistRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
	}

	WishlistItemResponse struct {
		ID        string  `json:"id"`
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		ImageURL  string  `json:"image_url"`
	}
)
