package handlers

import (
	"fmt"

	"agrimarket-backend/domain"
	"agrimarket-backend/internal/api/presenters"
	"agrimarket-backend/pkg/invoice"
	"agrimarket-backend/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		Checkout(c *fiber.Ctx) error
		GetUserOrders(c *fiber.Ctx) error
		GetAllOrders(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
		UpdateOwnOrderStatus(c *fiber.Ctx) error
		DownloadInvoice(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService   order.OrderService
		invoiceService invoice.InvoiceService
		validator      *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, invoiceService invoice.InvoiceService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService:   orderService,
		invoiceService: invoiceService,
		validator:      validator,
	}
}

func (h *orderHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.Checkout(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}

func (h *orderHandler) GetUserOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetUserOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetAllOrders(c *fiber.Ctx) error {
	res, err := h.orderService.GetAllOrders(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, domain.ErrInvalidOrderStatus)
	}

	if err := h.orderService.UpdateStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateOrderStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}

// UpdateOwnOrderStatus lets a customer mutate their own order, e.g.
// cancelling a still-pending one. Ownership is enforced by the service.
func (h *orderHandler) UpdateOwnOrderStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, domain.ErrInvalidOrderStatus)
	}

	userID := c.Locals("user_id").(string)

	if err := h.orderService.UpdateOwnOrderStatus(c.Context(), c.Params("id"), userID, req.Status); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateOrderStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}

func (h *orderHandler) DownloadInvoice(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	inv, err := h.invoiceService.Render(c.Context(), c.Params("orderId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedRenderInvoice, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", inv.Filename))
	return c.Status(fiber.StatusOK).Send(inv.PDF)
}
