package config

import (
	"os"
	"time"

	"agrimarket-backend/internal/api/handlers"
	"agrimarket-backend/internal/api/routes"
	"agrimarket-backend/internal/middleware"
	"agrimarket-backend/internal/utils"
	"agrimarket-backend/internal/utils/storage"
	"agrimarket-backend/pkg/cart"
	"agrimarket-backend/pkg/invoice"
	"agrimarket-backend/pkg/jwt"
	"agrimarket-backend/pkg/order"
	"agrimarket-backend/pkg/payment"
	"agrimarket-backend/pkg/product"
	"agrimarket-backend/pkg/user"
	"agrimarket-backend/pkg/wishlist"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)
	wishlistRepository := wishlist.NewWishlistRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	productService := product.NewProductService(productRepository, userRepository, s3)
	cartService := cart.NewCartService(cartRepository, productRepository)
	orderService := order.NewOrderService(orderRepository, cartRepository, userRepository)
	invoiceService := invoice.NewInvoiceService(orderRepository, userRepository)
	paymentService := payment.NewPaymentService()
	wishlistService := wishlist.NewWishlistService(wishlistRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, invoiceService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, validator)
	uploadHandler := handlers.NewUploadHandler(s3, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		OrderHandler:    orderHandler,
		PaymentHandler:  paymentHandler,
		WishlistHandler: wishlistHandler,
		UploadHandler:   uploadHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
