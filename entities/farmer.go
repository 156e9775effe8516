package entities

import (
	"github.com/google/uuid"
)

type Farmer struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	FarmName string    `json:"farm_name"`
	Location string    `json:"location"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (Farmer) TableName() string {
	return "farmers"
}
