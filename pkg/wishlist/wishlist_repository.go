package wishlist

import (
	"context"

	"agrimarket-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistLine struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	Price     float64
	ImageURL  string
}

type (
	WishlistRepository interface {
		Exists(ctx context.Context, userID string, productID string) (bool, error)
		AddItem(ctx context.Context, item *entities.WishlistItem) error
		GetWishlistLines(ctx context.Context, userID string) ([]WishlistLine, error)
		DeleteItem(ctx context.Context, userID string, itemID string) (int64, error)
	}

	wishlistRepository struct {
		db *gorm.DB
	}
)

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Exists(ctx context.Context, userID string, productID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *wishlistRepository) AddItem(ctx context.Context, item *entities.WishlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wishlistRepository) GetWishlistLines(ctx context.Context, userID string) ([]WishlistLine, error) {
	var lines []WishlistLine
	if err := r.db.WithContext(ctx).
		Table("wishlist w").
		Select("w.id, w.product_id, p.name, p.price, p.image_url").
		Joins("JOIN products p ON w.product_id = p.id").
		Where("w.user_id = ?", userID).
		Order("w.created_at desc").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *wishlistRepository) DeleteItem(ctx context.Context, userID string, itemID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entities.WishlistItem{})
	return result.RowsAffected, result.Error
}
