package storage

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agrimarket-backend/domain"
	"agrimarket-backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	UploadFolder   = "uploads"
	presignExpires = 5 * time.Minute
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
		PresignUpload(fileName string, contentType string) (domain.PresignUploadResponse, error)
	}

	awsS3 struct {
		client  *s3.Client
		presign *s3.PresignClient
		bucket  string
		region  string
		cdnURL  string
		useS3   bool
	}
)

// NewAwsS3 builds the storage client from configuration. With USE_S3 off,
// files land in the local uploads/ directory and presigned uploads are
// refused, matching the backend-proxy serving mode.
func NewAwsS3() AwsS3 {
	utils.LoadConfig()

	store := &awsS3{
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: utils.GetConfig("AWS_S3_REGION"),
		cdnURL: strings.TrimRight(utils.GetConfig("CDN_URL"), "/"),
		useS3:  utils.GetConfig("USE_S3") == "true",
	}
	if store.region == "" {
		store.region = "eu-north-1"
	}

	if !store.useS3 {
		if err := os.MkdirAll(UploadFolder, os.ModePerm); err != nil {
			log.Fatalf("error creating uploads directory: %v", err)
		}
		return store
	}

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(store.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS configuration: %v", err)
	}

	store.client = s3.NewFromConfig(cfg)
	store.presign = s3.NewPresignClient(store.client)
	return store
}

func allowed(contentType string, allowedTypes []string) bool {
	if len(allowedTypes) == 0 {
		return true
	}
	for _, t := range allowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !allowed(contentType, allowedTypes) {
		return "", domain.ErrInvalidContentType
	}

	ext := filepath.Ext(file.Filename)
	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if !a.useS3 {
		dst, err := os.Create(filepath.Clean(objectKey))
		if err != nil {
			return "", err
		}
		defer dst.Close()
		if _, err := dst.ReadFrom(src); err != nil {
			return "", err
		}
		return objectKey, nil
	}

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

// UpdateFile overwrites an existing object in place, keeping its key.
func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !allowed(contentType, allowedTypes) {
		return "", domain.ErrInvalidContentType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if !a.useS3 {
		dst, err := os.Create(filepath.Clean(objectKey))
		if err != nil {
			return "", err
		}
		defer dst.Close()
		if _, err := dst.ReadFrom(src); err != nil {
			return "", err
		}
		return objectKey, nil
	}

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	if !a.useS3 {
		return os.Remove(filepath.Clean(objectKey))
	}

	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	if a.cdnURL != "" {
		return fmt.Sprintf("%s/%s", a.cdnURL, objectKey)
	}
	if a.useS3 {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
	}
	return "/" + objectKey
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	if a.cdnURL != "" {
		if key, ok := strings.CutPrefix(link, a.cdnURL+"/"); ok {
			return key
		}
	}
	bucketBase := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if key, ok := strings.CutPrefix(link, bucketBase); ok {
		return key
	}
	if key, ok := strings.CutPrefix(link, "/"); ok && !strings.Contains(key, "://") {
		return key
	}
	return ""
}

// PresignUpload hands the client a time-limited PUT URL so file bytes never
// pass through this server. The key is generated server-side.
func (a *awsS3) PresignUpload(fileName string, contentType string) (domain.PresignUploadResponse, error) {
	if !a.useS3 {
		return domain.PresignUploadResponse{}, domain.ErrStorageDisabled
	}
	if !allowed(contentType, AllowImage) {
		return domain.PresignUploadResponse{}, domain.ErrInvalidContentType
	}

	objectKey := fmt.Sprintf("%s/%s%s", UploadFolder, uuid.New().String(), filepath.Ext(fileName))

	req, err := a.presign.PresignPutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpires))
	if err != nil {
		return domain.PresignUploadResponse{}, err
	}

	return domain.PresignUploadResponse{
		UploadURL: req.URL,
		Key:       objectKey,
		PublicURL: a.GetPublicLinkKey(objectKey),
		Headers:   map[string]string{"Content-Type": contentType},
		ExpiresIn: int(presignExpires.Seconds()),
	}, nil
}
