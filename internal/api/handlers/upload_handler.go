package handlers

import (
	"agrimarket-backend/domain"
	"agrimarket-backend/internal/api/presenters"
	"agrimarket-backend/internal/utils/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		PresignUpload(c *fiber.Ctx) error
	}

	uploadHandler struct {
		s3        storage.AwsS3
		validator *validator.Validate
	}
)

func NewUploadHandler(s3 storage.AwsS3, validator *validator.Validate) UploadHandler {
	return &uploadHandler{
		s3:        s3,
		validator: validator,
	}
}

func (h *uploadHandler) PresignUpload(c *fiber.Ctx) error {
	req := new(domain.PresignUploadRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPresignUpload, err)
	}

	res, err := h.s3.PresignUpload(req.Filename, req.ContentType)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedPresignUpload, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPresignUpload)
}
