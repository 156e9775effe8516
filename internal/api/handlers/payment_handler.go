package handlers

import (
	"agrimarket-backend/domain"
	"agrimarket-backend/internal/api/presenters"
	"agrimarket-backend/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		CreatePaymentOrder(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) CreatePaymentOrder(c *fiber.Ctx) error {
	req := new(domain.CreatePaymentOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePaymentOrder, domain.ErrInvalidPaymentAmount)
	}

	res, err := h.paymentService.CreatePaymentOrder(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedCreatePaymentOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePaymentOrder)
}
