package product

import (
	"context"

	"agrimarket-backend/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		SaveProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) (int64, error)
		GetProducts(ctx context.Context, activeOnly bool) ([]*entities.Product, error)
		SearchProducts(ctx context.Context, query string) ([]*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) SaveProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{})
	return result.RowsAffected, result.Error
}

func (r *productRepository) GetProducts(ctx context.Context, activeOnly bool) ([]*entities.Product, error) {
	var products []*entities.Product
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) SearchProducts(ctx context.Context, query string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("active = ? AND name ILIKE ?", true, "%"+query+"%").
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
