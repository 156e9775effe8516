package cart

import (
	"context"
	"errors"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"
	"agrimarket-backend/pkg/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) error
		GetCart(ctx context.Context, userID string) (domain.CartResponse, error)
		UpdateQuantity(ctx context.Context, userID string, itemID string, req domain.UpdateCartItemRequest) error
		RemoveItem(ctx context.Context, userID string, itemID string) error
	}

	cartService struct {
		cartRepository    CartRepository
		productRepository product.ProductRepository
	}
)

func NewCartService(cartRepository CartRepository, productRepository product.ProductRepository) CartService {
	return &cartService{
		cartRepository:    cartRepository,
		productRepository: productRepository,
	}
}

func (s *cartService) AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) error {
	if req.Quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	if _, err := s.productRepository.GetProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	productUUID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domain.ErrParseUUID
	}

	item := &entities.CartItem{
		ID:        uuid.New(),
		UserID:    userUUID,
		ProductID: productUUID,
		Quantity:  req.Quantity,
	}
	return s.cartRepository.AddOrIncrement(ctx, item)
}

func (s *cartService) GetCart(ctx context.Context, userID string) (domain.CartResponse, error) {
	lines, err := s.cartRepository.GetCartLines(ctx, userID)
	if err != nil {
		return domain.CartResponse{}, err
	}

	response := domain.CartResponse{Items: make([]domain.CartItemResponse, 0, len(lines))}
	for _, line := range lines {
		response.Items = append(response.Items, domain.CartItemResponse{
			ID:         line.ID.String(),
			ProductID:  line.ProductID.String(),
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			TotalPrice: line.TotalPrice,
		})
		response.Total += line.TotalPrice
	}
	return response, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID string, itemID string, req domain.UpdateCartItemRequest) error {
	if req.Quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	affected, err := s.cartRepository.UpdateQuantity(ctx, userID, itemID, req.Quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID string, itemID string) error {
	affected, err := s.cartRepository.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}
