package entities

import (
	"github.com/google/uuid"
)

type WishlistItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id"`

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}

func (WishlistItem) TableName() string {
	return "wishlist"
}
