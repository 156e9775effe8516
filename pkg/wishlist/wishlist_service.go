package wishlist

import (
	"context"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"
	"agrimarket-backend/internal/utils/imageref"
	"agrimarket-backend/pkg/product"

	"github.com/google/uuid"
)

type (
	WishlistService interface {
		AddToWishlist(ctx context.Context, req domain.AddToWishlistRequest, userID string) error
		GetWishlist(ctx context.Context, userID string) ([]domain.WishlistItemResponse, error)
		RemoveFromWishlist(ctx context.Context, userID string, itemID string) error
	}

	wishlistService struct {
		wishlistRepository WishlistRepository
		imgCfg             imageref.Config
	}
)

func NewWishlistService(wishlistRepository WishlistRepository) WishlistService {
	return &wishlistService{
		wishlistRepository: wishlistRepository,
		imgCfg:             product.ResolverConfig(),
	}
}

func (s *wishlistService) AddToWishlist(ctx context.Context, req domain.AddToWishlistRequest, userID string) error {
	exists, err := s.wishlistRepository.Exists(ctx, userID, req.ProductID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyInWishlist
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	productUUID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.wishlistRepository.AddItem(ctx, &entities.WishlistItem{
		ID:        uuid.New(),
		UserID:    userUUID,
		ProductID: productUUID,
	})
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID string) ([]domain.WishlistItemResponse, error) {
	lines, err := s.wishlistRepository.GetWishlistLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.WishlistItemResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.WishlistItemResponse{
			ID:        line.ID.String(),
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			Price:     line.Price,
			ImageURL:  imageref.ResolveURL(line.ImageURL, s.imgCfg),
		})
	}
	return items, nil
}

func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID string, itemID string) error {
	affected, err := s.wishlistRepository.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrWishlistItemNotFound
	}
	return nil
}
