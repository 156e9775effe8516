package routes

import (
	"agrimarket-backend/internal/api/handlers"
	"agrimarket-backend/internal/middleware"
	"agrimarket-backend/internal/policy"
	"agrimarket-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ProductHandler  handlers.ProductHandler
	CartHandler     handlers.CartHandler
	OrderHandler    handlers.OrderHandler
	PaymentHandler  handlers.PaymentHandler
	WishlistHandler handlers.WishlistHandler
	UploadHandler   handlers.UploadHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Guest()
	c.Auth()
	c.Products()
	c.Cart()
	c.Orders()
	c.Wishlist()
}

func (c *Config) Guest() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
	c.App.Post("/signup", c.UserHandler.Register)
	c.App.Post("/login", c.UserHandler.Login)
}

func (c *Config) Auth() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/profile", auth, c.UserHandler.Profile)
	c.App.Post("/uploads/presign", auth, c.UploadHandler.PresignUpload)
	c.App.Post("/create-order", auth, c.PaymentHandler.CreatePaymentOrder)
}

func (c *Config) Products() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	// Browsing is public; mutations go through the capability table.
	c.App.Get("/products", c.ProductHandler.GetProducts)
	c.App.Get("/products/search", c.ProductHandler.SearchProducts)
	c.App.Get("/search", c.ProductHandler.SearchProducts)
	c.App.Get("/products/:id", c.ProductHandler.GetProductByID)

	c.App.Post("/products", auth, c.Middleware.Authorize(policy.ActionCreateProduct), c.ProductHandler.AddProduct)
	c.App.Put("/products/:id", auth, c.Middleware.Authorize(policy.ActionReplaceProduct), c.ProductHandler.ReplaceProduct)
	c.App.Patch("/products/:id", auth, c.Middleware.Authorize(policy.ActionPatchProduct), c.ProductHandler.PatchProduct)
	c.App.Delete("/products/:id", auth, c.Middleware.Authorize(policy.ActionDeleteProduct), c.ProductHandler.DeleteProduct)
}

func (c *Config) Cart() {
	cart := c.App.Group("/cart", c.Middleware.AuthMiddleware(c.JWTService))

	cart.Post("", c.CartHandler.AddToCart)
	cart.Get("", c.CartHandler.GetCart)
	cart.Put("/:id", c.CartHandler.UpdateCartItem)
	cart.Delete("/:id", c.CartHandler.RemoveCartItem)
}

func (c *Config) Orders() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/checkout", auth, c.OrderHandler.Checkout)
	c.App.Get("/orders", auth, c.OrderHandler.GetUserOrders)
	c.App.Put("/orders/:id/status", auth, c.Middleware.Authorize(policy.ActionUpdateOrderStatus), c.OrderHandler.UpdateOrderStatus)
	c.App.Put("/order/:id/status", auth, c.OrderHandler.UpdateOwnOrderStatus)
	c.App.Get("/invoice/:orderId", auth, c.OrderHandler.DownloadInvoice)

	admin := c.App.Group("/admin", auth)
	admin.Get("/orders", c.Middleware.Authorize(policy.ActionViewAllOrders), c.OrderHandler.GetAllOrders)
	admin.Put("/orders/:id/status", c.Middleware.Authorize(policy.ActionAdminUpdateOrderStatus), c.OrderHandler.UpdateOrderStatus)
}

func (c *Config) Wishlist() {
	wishlist := c.App.Group("/wishlist", c.Middleware.AuthMiddleware(c.JWTService))

	wishlist.Post("", c.WishlistHandler.AddToWishlist)
	wishlist.Get("", c.WishlistHandler.GetWishlist)
	wishlist.Delete("/:id", c.WishlistHandler.RemoveFromWishlist)
}
