package domain

import (
	"errors"
)

var (
	MessageSuccessPresignUpload = "upload URL created"
	MessageFailedPresignUpload  = "failed to create upload URL"

	ErrStorageDisabled    = errors.New("object storage is disabled")
	ErrInvalidContentType = errors.New("content type must be an image")
)

type (
	PresignUploadRequest struct {
		Filename    string `json:"filename" validate:"required"`
		ContentType string `json:"content_type" validate:"required"`
	}

	PresignUploadResponse struct {
		UploadURL string            `json:"upload_url"`
		Key       string            `json:"key"`
		PublicURL string            `json:"public_url"`
		Headers   map[string]string `json:"headers"`
		ExpiresIn int               `json:"expires_in"`
	}
)
