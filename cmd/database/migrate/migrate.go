package migration

import (
	"fmt"
	"log"

	"agrimarket-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Farmer{}); err != nil {
		log.Fatalf("Error migrating farmer database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CartItem{}); err != nil {
		log.Fatalf("Error migrating cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}, &entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WishlistItem{}); err != nil {
		log.Fatalf("Error migrating wishlist database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
