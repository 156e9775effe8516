package handlers

import (
	"errors"

	"agrimarket-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps domain errors onto the HTTP taxonomy: validation
// failures are 400, ownership/lookup misses are 404, role problems are 403,
// anything unrecognized is a 500 from the data layer or a collaborator.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidOrderStatus),
		errors.Is(err, domain.ErrInvalidPaymentAmount),
		errors.Is(err, domain.ErrFarmerIDRequired),
		errors.Is(err, domain.ErrInvalidProductFields),
		errors.Is(err, domain.ErrSearchQueryRequired),
		errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAlreadyInWishlist),
		errors.Is(err, domain.ErrInvalidContentType),
		errors.Is(err, domain.ErrStorageDisabled),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrNotProductOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrWishlistItemNotFound),
		errors.Is(err, domain.ErrFarmerNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
