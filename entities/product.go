package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FarmerID    *uuid.UUID `json:"farmer_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	Category    string     `json:"category"`
	// ImageURL holds the raw image reference as stored: an absolute URL, an
	// object-storage key like uploads/abc.jpg, a legacy /uploads/abc.jpg
	// path, or a bare filename. Resolution happens at response time.
	ImageURL string `json:"image_url,omitempty"`
	Active   bool   `gorm:"default:true" json:"active"`

	Farmer *Farmer `gorm:"foreignKey:FarmerID"`
	Timestamp
}
