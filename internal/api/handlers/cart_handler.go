package handlers

import (
	"agrimarket-backend/domain"
	"agrimarket-backend/internal/api/presenters"
	"agrimarket-backend/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		AddToCart(c *fiber.Ctx) error
		GetCart(c *fiber.Ctx) error
		UpdateCartItem(c *fiber.Ctx) error
		RemoveCartItem(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) AddToCart(c *fiber.Ctx) error {
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, domain.ErrInvalidQuantity)
	}

	userID := c.Locals("user_id").(string)

	if err := h.cartService.AddToCart(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddToCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddToCart)
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cartService.GetCart(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) UpdateCartItem(c *fiber.Ctx) error {
	req := new(domain.UpdateCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, domain.ErrInvalidQuantity)
	}

	userID := c.Locals("user_id").(string)

	if err := h.cartService.UpdateQuantity(c.Context(), userID, c.Params("id"), *req); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCartItem)
}

func (h *cartHandler) RemoveCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.cartService.RemoveItem(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}
