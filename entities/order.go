package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `gorm:"default:Pending" json:"status"` // "Pending", "Shipped", "Delivered", "Cancelled", "Paid"

	User       *User        `gorm:"foreignKey:UserID"`
	OrderItems []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem snapshots the product price at purchase time. It is written once
// by checkout and never updated afterwards.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`

	Order   *Order   `gorm:"foreignKey:OrderID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
