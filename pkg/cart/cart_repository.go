package cart

import (
	"context"

	"agrimarket-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartLine is one cart row joined with the live product record.
type CartLine struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	Name       string
	Price      float64
	Quantity   int
	TotalPrice float64
}

type (
	CartRepository interface {
		AddOrIncrement(ctx context.Context, item *entities.CartItem) error
		GetCartLines(ctx context.Context, userID string) ([]CartLine, error)
		UpdateQuantity(ctx context.Context, userID string, itemID string, quantity int) (int64, error)
		DeleteItem(ctx context.Context, userID string, itemID string) (int64, error)
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// AddOrIncrement relies on the (user_id, product_id) unique index: a repeat
// add becomes a single atomic quantity increment, never a duplicate row.
func (r *cartRepository) AddOrIncrement(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart.quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
}

func (r *cartRepository) GetCartLines(ctx context.Context, userID string) ([]CartLine, error) {
	var lines []CartLine
	if err := r.db.WithContext(ctx).
		Table("cart c").
		Select("c.id, c.product_id, p.name, p.price, c.quantity, (p.price * c.quantity) AS total_price").
		Joins("JOIN products p ON c.product_id = p.id").
		Where("c.user_id = ?", userID).
		Order("c.created_at asc").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID string, itemID string, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, userID string, itemID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entities.CartItem{})
	return result.RowsAffected, result.Error
}
