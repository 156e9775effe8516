package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddProduct     = "Product added successfully!"
	MessageSuccessUpdateProduct  = "Product updated successfully!"
	MessageSuccessDeleteProduct  = "Product deleted successfully!"
	MessageSuccessGetProducts    = "products retrieved successfully"
	MessageSuccessSearchProducts = "products search completed"

	MessageFailedAddProduct    = "failed to add product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"
	MessageFailedGetProducts   = "failed to retrieve products"

	ErrProductNotFound      = errors.New("product not found")
	ErrFarmerIDRequired     = errors.New("farmer ID is required")
	ErrFarmerNotFound       = errors.New("farmer not found")
	ErrNotProductOwner      = errors.New("product does not belong to this farmer")
	ErrSearchQueryRequired  = errors.New("query parameter is required")
	ErrInvalidProductFields = errors.New("name, price, and quantity are required")
)

type (
	AddProductRequest struct {
		Name        string  `json:"name" form:"name" validate:"required"`
		Description string  `json:"description" form:"description"`
		Price       float64 `json:"price" form:"price" validate:"required,gte=0"`
		Quantity    int     `json:"quantity" form:"quantity" validate:"required,gte=0"`
		Category    string  `json:"category" form:"category"`
		// FarmerID must be supplied by admins; for farmers it is resolved
		// from the authenticated identity and this field is ignored.
		FarmerID string `json:"farmer_id" form:"farmer_id" validate:"omitempty,uuid"`
		// Either a multipart file or a pre-uploaded storage key.
		Image    *multipart.FileHeader `json:"-" form:"image"`
		ImageKey string                `json:"image_key" form:"image_key"`
	}

	AddProductResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
		ImageURL string  `json:"image_url,omitempty"`
	}

	ReplaceProductRequest struct {
		Name        string  `json:"name" form:"name" validate:"required"`
		Description string  `json:"description" form:"description"`
		Price       float64 `json:"price" form:"price" validate:"gte=0"`
		Quantity    int     `json:"quantity" form:"quantity" validate:"gte=0"`
		Category    string  `json:"category" form:"category"`
		ImageURL    string  `json:"image_url" form:"image_url"`
		// When a file is sent, the stored object is overwritten in place and
		// ImageURL is ignored.
		Image *multipart.FileHeader `json:"-" form:"image"`
	}

	PatchProductRequest struct {
		Price    *float64 `json:"price" validate:"omitempty,gte=0"`
		Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
		Active   *bool    `json:"active"`
		ImageKey string   `json:"image_key"`
	}

	ProductResponse struct {
		ID          string    `json:"id"`
		FarmerID    string    `json:"farmer_id,omitempty"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Price       float64   `json:"price"`
		Quantity    int       `json:"quantity"`
		Category    string    `json:"category"`
		ImageURL    string    `json:"image_url"`
		Active      bool      `json:"active"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
