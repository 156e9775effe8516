package handlers

import (
	"agrimarket-backend/domain"
	"agrimarket-backend/internal/api/presenters"
	"agrimarket-backend/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		AddProduct(c *fiber.Ctx) error
		ReplaceProduct(c *fiber.Ctx) error
		PatchProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetProductByID(c *fiber.Ctx) error
		SearchProducts(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) AddProduct(c *fiber.Ctx) error {
	req := new(domain.AddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// The image arrives as a multipart part; BodyParser leaves it alone.
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, domain.ErrInvalidProductFields)
	}

	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	res, err := h.productService.AddProduct(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *productHandler) ReplaceProduct(c *fiber.Ctx) error {
	req := new(domain.ReplaceProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, domain.ErrInvalidProductFields)
	}

	if err := h.productService.ReplaceProduct(c.Context(), c.Params("id"), *req); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) PatchProduct(c *fiber.Ctx) error {
	req := new(domain.PatchProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	if err := h.productService.PatchProduct(c.Context(), c.Params("id"), *req, userID, role); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	res, err := h.productService.GetProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProductByID(c *fiber.Ctx) error {
	res, err := h.productService.GetProductByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

// SearchProducts serves both search routes; the legacy one uses "q" and
// the catalog one uses "query".
func (h *productHandler) SearchProducts(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		query = c.Query("q")
	}

	res, err := h.productService.SearchProducts(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchProducts)
}
