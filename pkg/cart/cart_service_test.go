package cart

import (
	"context"
	"testing"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCartRepository struct {
	lines      map[uuid.UUID]*CartLine
	prices     map[uuid.UUID]float64
	updateHits int64
	deleteHits int64
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{
		lines:  make(map[uuid.UUID]*CartLine),
		prices: make(map[uuid.UUID]float64),
	}
}

func (f *fakeCartRepository) AddOrIncrement(_ context.Context, item *entities.CartItem) error {
	for _, line := range f.lines {
		if line.ProductID == item.ProductID {
			line.Quantity += item.Quantity
			line.TotalPrice = line.Price * float64(line.Quantity)
			return nil
		}
	}
	price := f.prices[item.ProductID]
	f.lines[item.ID] = &CartLine{
		ID:         item.ID,
		ProductID:  item.ProductID,
		Price:      price,
		Quantity:   item.Quantity,
		TotalPrice: price * float64(item.Quantity),
	}
	return nil
}

func (f *fakeCartRepository) GetCartLines(_ context.Context, _ string) ([]CartLine, error) {
	out := make([]CartLine, 0, len(f.lines))
	for _, line := range f.lines {
		out = append(out, *line)
	}
	return out, nil
}

func (f *fakeCartRepository) UpdateQuantity(_ context.Context, _ string, itemID string, quantity int) (int64, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return 0, nil
	}
	line, ok := f.lines[id]
	if !ok {
		return 0, nil
	}
	line.Quantity = quantity
	line.TotalPrice = line.Price * float64(quantity)
	f.updateHits++
	return 1, nil
}

func (f *fakeCartRepository) DeleteItem(_ context.Context, _ string, itemID string) (int64, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return 0, nil
	}
	if _, ok := f.lines[id]; !ok {
		return 0, nil
	}
	delete(f.lines, id)
	f.deleteHits++
	return 1, nil
}

type fakeProductRepository struct {
	products map[uuid.UUID]*entities.Product
}

func (f *fakeProductRepository) CreateProduct(_ context.Context, _ *entities.Product) error {
	return nil
}

func (f *fakeProductRepository) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	p, ok := f.products[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductRepository) SaveProduct(_ context.Context, _ *entities.Product) error {
	return nil
}

func (f *fakeProductRepository) DeleteProduct(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepository) GetProducts(_ context.Context, _ bool) ([]*entities.Product, error) {
	return nil, nil
}

func (f *fakeProductRepository) SearchProducts(_ context.Context, _ string) ([]*entities.Product, error) {
	return nil, nil
}

func seedProduct(price float64) (*fakeProductRepository, uuid.UUID) {
	id := uuid.New()
	repo := &fakeProductRepository{products: map[uuid.UUID]*entities.Product{
		id: {ID: id, Name: "Tomatoes", Price: price, Quantity: 100, Active: true},
	}}
	return repo, id
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	productRepo, productID := seedProduct(40)
	cartRepo := newFakeCartRepository()
	cartRepo.prices[productID] = 40
	service := NewCartService(cartRepo, productRepo)

	userID := uuid.New().String()
	req := domain.AddToCartRequest{ProductID: productID.String(), Quantity: 2}

	require.NoError(t, service.AddToCart(context.Background(), req, userID))
	require.NoError(t, service.AddToCart(context.Background(), req, userID))

	cart, err := service.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, float64(160), cart.Total)
}

func TestAddToCartRejectsInvalidQuantity(t *testing.T) {
	productRepo, productID := seedProduct(40)
	service := NewCartService(newFakeCartRepository(), productRepo)

	err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		ProductID: productID.String(),
		Quantity:  0,
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	productRepo, _ := seedProduct(40)
	service := NewCartService(newFakeCartRepository(), productRepo)

	err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		ProductID: uuid.New().String(),
		Quantity:  1,
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateQuantityMissingItem(t *testing.T) {
	productRepo, _ := seedProduct(40)
	service := NewCartService(newFakeCartRepository(), productRepo)

	err := service.UpdateQuantity(context.Background(), uuid.New().String(), uuid.New().String(), domain.UpdateCartItemRequest{Quantity: 3})

	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestRemoveItemMissing(t *testing.T) {
	productRepo, _ := seedProduct(40)
	service := NewCartService(newFakeCartRepository(), productRepo)

	err := service.RemoveItem(context.Background(), uuid.New().String(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestGetCartSumsLineTotals(t *testing.T) {
	cartRepo := newFakeCartRepository()
	p1, p2 := uuid.New(), uuid.New()
	cartRepo.lines[uuid.New()] = &CartLine{ID: uuid.New(), ProductID: p1, Name: "Tomatoes", Price: 40, Quantity: 2, TotalPrice: 80}
	cartRepo.lines[uuid.New()] = &CartLine{ID: uuid.New(), ProductID: p2, Name: "Honey", Price: 90, Quantity: 1, TotalPrice: 90}
	service := NewCartService(cartRepo, &fakeProductRepository{})

	cart, err := service.GetCart(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, float64(170), cart.Total)
}
