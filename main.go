package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"agrimarket-backend/cmd/config"
	migration "agrimarket-backend/cmd/database/migrate"
	"agrimarket-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("database close: %v", err)
		}
	}
}
