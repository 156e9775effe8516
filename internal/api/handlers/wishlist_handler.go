package handlers

import (
	"agrimarket-backend/domain"
	"agrimarket-backend/internal/api/presenters"
	"agrimarket-backend/pkg/wishlist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WishlistHandler interface {
		AddToWishlist(c *fiber.Ctx) error
		GetWishlist(c *fiber.Ctx) error
		RemoveFromWishlist(c *fiber.Ctx) error
	}

	wishlistHandler struct {
		wishlistService wishlist.WishlistService
		validator       *validator.Validate
	}
)

func NewWishlistHandler(wishlistService wishlist.WishlistService, validator *validator.Validate) WishlistHandler {
	return &wishlistHandler{
		wishlistService: wishlistService,
		validator:       validator,
	}
}

func (h *wishlistHandler) AddToWishlist(c *fiber.Ctx) error {
	req := new(domain.AddToWishlistRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToWishlist, err)
	}

	userID := c.Locals("user_id").(string)

	if err := h.wishlistService.AddToWishlist(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddToWishlist, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddToWishlist)
}

func (h *wishlistHandler) GetWishlist(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.wishlistService.GetWishlist(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetWishlist, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWishlist)
}

func (h *wishlistHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.wishlistService.RemoveFromWishlist(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedRemoveFromWishlist, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFromWishlist)
}
