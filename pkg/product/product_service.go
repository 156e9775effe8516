package product

import (
	"context"
	"errors"
	"fmt"
	"log"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"
	"agrimarket-backend/internal/utils"
	"agrimarket-backend/internal/utils/imageref"
	"agrimarket-backend/internal/utils/storage"
	"agrimarket-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest, userID string, role string) (domain.AddProductResponse, error)
		ReplaceProduct(ctx context.Context, id string, req domain.ReplaceProductRequest) error
		PatchProduct(ctx context.Context, id string, req domain.PatchProductRequest, userID string, role string) error
		DeleteProduct(ctx context.Context, id string) error
		GetProducts(ctx context.Context) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
		SearchProducts(ctx context.Context, query string) ([]domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		userRepository    user.UserRepository
		s3                storage.AwsS3
		imgCfg            imageref.Config
	}
)

// ResolverConfig builds the image resolution settings from app config. The
// bucket only participates when object storage is actually on; otherwise
// keys fall through to local /uploads/ serving.
func ResolverConfig() imageref.Config {
	cfg := imageref.Config{
		CDNBase: utils.GetConfig("CDN_URL"),
		Region:  utils.GetConfig("AWS_S3_REGION"),
	}
	if utils.GetConfig("USE_S3") == "true" {
		cfg.Bucket = utils.GetConfig("AWS_S3_BUCKET")
	}
	return cfg
}

func NewProductService(productRepository ProductRepository, userRepository user.UserRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		userRepository:    userRepository,
		s3:                s3,
		imgCfg:            ResolverConfig(),
	}
}

func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest, userID string, role string) (domain.AddProductResponse, error) {
	var farmerID *uuid.UUID

	switch role {
	case domain.RoleFarmer:
		farmer, err := s.userRepository.GetFarmerByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.AddProductResponse{}, domain.ErrFarmerNotFound
			}
			return domain.AddProductResponse{}, err
		}
		farmerID = &farmer.ID
	case domain.RoleAdmin:
		if req.FarmerID == "" {
			return domain.AddProductResponse{}, domain.ErrFarmerIDRequired
		}
		parsed, err := uuid.Parse(req.FarmerID)
		if err != nil {
			return domain.AddProductResponse{}, domain.ErrParseUUID
		}
		farmerID = &parsed
	default:
		return domain.AddProductResponse{}, domain.ErrUserNotAllowed
	}

	productID := uuid.New()
	imageURL := req.ImageKey
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("product-%s", productID.String()),
			req.Image,
			storage.UploadFolder,
			storage.AllowImage...,
		)
		if err != nil {
			return domain.AddProductResponse{}, err
		}
		imageURL = objectKey
	}

	product := &entities.Product{
		ID:          productID,
		FarmerID:    farmerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		ImageURL:    imageURL,
		Active:      true,
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.AddProductResponse{}, err
	}

	return domain.AddProductResponse{
		ID:       product.ID.String(),
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
		ImageURL: imageref.ResolveURL(product.ImageURL, s.imgCfg),
	}, nil
}

func (s *productService) ReplaceProduct(ctx context.Context, id string, req domain.ReplaceProductRequest) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Quantity = req.Quantity
	product.Category = req.Category

	if req.Image != nil {
		if key := s.storedObjectKey(product.ImageURL); key != "" {
			// Overwrite in place so existing references stay valid.
			if _, err := s.s3.UpdateFile(key, req.Image, storage.AllowImage...); err != nil {
				return err
			}
		} else {
			objectKey, err := s.s3.UploadFile(
				fmt.Sprintf("product-%s", product.ID.String()),
				req.Image,
				storage.UploadFolder,
				storage.AllowImage...,
			)
			if err != nil {
				return err
			}
			product.ImageURL = objectKey
		}
	} else {
		product.ImageURL = req.ImageURL
	}

	return s.productRepository.SaveProduct(ctx, product)
}

func (s *productService) PatchProduct(ctx context.Context, id string, req domain.PatchProductRequest, userID string, role string) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if role == domain.RoleFarmer {
		farmer, err := s.userRepository.GetFarmerByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFarmerNotFound
			}
			return err
		}
		if product.FarmerID == nil || *product.FarmerID != farmer.ID {
			return domain.ErrNotProductOwner
		}
	}

	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	var staleKey string
	if req.ImageKey != "" && req.ImageKey != product.ImageURL {
		staleKey = s.storedObjectKey(product.ImageURL)
		product.ImageURL = req.ImageKey
	}

	if err := s.productRepository.SaveProduct(ctx, product); err != nil {
		return err
	}

	if staleKey != "" && staleKey != s.storedObjectKey(product.ImageURL) {
		if err := s.s3.DeleteFile(staleKey); err != nil {
			log.Printf("product %s: stale image %s not removed: %v", id, staleKey, err)
		}
	}
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	affected, err := s.productRepository.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	// The row is gone either way; a failed object delete only leaks storage.
	if key := s.storedObjectKey(product.ImageURL); key != "" {
		if err := s.s3.DeleteFile(key); err != nil {
			log.Printf("product %s: stored image %s not removed: %v", id, key, err)
		}
	}
	return nil
}

// storedObjectKey maps a persisted image reference back to the object key
// holding its bytes. Foreign absolute URLs and the empty reference yield ""
// since no object of ours backs them.
func (s *productService) storedObjectKey(imageURL string) string {
	ref := imageref.Parse(imageURL)
	switch ref.Kind {
	case imageref.KindEmpty:
		return ""
	case imageref.KindAbsolute:
		return s.s3.GetObjectKeyFromLink(imageURL)
	}
	return storage.UploadFolder + "/" + ref.Key
}

func (s *productService) GetProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx, true)
	if err != nil {
		return nil, err
	}
	return s.toResponses(products), nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return s.toResponse(product), nil
}

// SearchProducts returns ErrProductNotFound on an empty result, which the
// handler maps to 404 the way the storefront expects.
func (s *productService) SearchProducts(ctx context.Context, query string) ([]domain.ProductResponse, error) {
	if query == "" {
		return nil, domain.ErrSearchQueryRequired
	}

	products, err := s.productRepository.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return s.toResponses(products), nil
}

func (s *productService) toResponse(product *entities.Product) domain.ProductResponse {
	res := domain.ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Category:    product.Category,
		ImageURL:    imageref.ResolveURL(product.ImageURL, s.imgCfg),
		Active:      product.Active,
		CreatedAt:   product.CreatedAt,
	}
	if product.FarmerID != nil {
		res.FarmerID = product.FarmerID.String()
	}
	return res
}

func (s *productService) toResponses(products []*entities.Product) []domain.ProductResponse {
	responses := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, s.toResponse(p))
	}
	return responses
}
