package order

import (
	"context"
	"errors"
	"testing"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"
	"agrimarket-backend/pkg/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderRepository struct {
	orders map[uuid.UUID]*entities.Order
	items  map[uuid.UUID][]*entities.OrderItem
	// cart, when set, is emptied alongside the order insert the way the
	// real repository's transaction does.
	cart *fakeCheckoutCartRepository
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{
		orders: make(map[uuid.UUID]*entities.Order),
		items:  make(map[uuid.UUID][]*entities.OrderItem),
	}
}

func (f *fakeOrderRepository) CreateOrderWithItems(_ context.Context, order *entities.Order, items []*entities.OrderItem) error {
	for _, item := range items {
		item.OrderID = order.ID
	}
	f.orders[order.ID] = order
	f.items[order.ID] = items
	if f.cart != nil {
		f.cart.cleared = true
	}
	return nil
}

func (f *fakeOrderRepository) GetOrdersByUserID(_ context.Context, userID string) ([]OrderRow, error) {
	var rows []OrderRow
	for _, o := range f.orders {
		if o.UserID.String() == userID {
			rows = append(rows, OrderRow{ID: o.ID, TotalPrice: o.TotalPrice, Status: o.Status})
		}
	}
	return rows, nil
}

func (f *fakeOrderRepository) GetAllOrders(_ context.Context) ([]AdminOrderRow, error) {
	var rows []AdminOrderRow
	for _, o := range f.orders {
		rows = append(rows, AdminOrderRow{ID: o.ID, TotalPrice: o.TotalPrice, Status: o.Status})
	}
	return rows, nil
}

func (f *fakeOrderRepository) GetOrderForUser(_ context.Context, orderID string, userID string) (*entities.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	o, ok := f.orders[id]
	if !ok || o.UserID.String() != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepository) GetOrderItemProductNames(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (f *fakeOrderRepository) UpdateOrderStatus(_ context.Context, orderID string, status string) (int64, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return 0, nil
	}
	o, ok := f.orders[id]
	if !ok {
		return 0, nil
	}
	o.Status = status
	return 1, nil
}

func (f *fakeOrderRepository) UpdateOrderStatusForUser(_ context.Context, orderID string, userID string, status string) (int64, error) {
	o, err := f.GetOrderForUser(context.Background(), orderID, userID)
	if err != nil {
		return 0, nil
	}
	o.Status = status
	return 1, nil
}

type fakeCheckoutCartRepository struct {
	lines   []cart.CartLine
	cleared bool
}

func (f *fakeCheckoutCartRepository) AddOrIncrement(_ context.Context, _ *entities.CartItem) error {
	return nil
}

func (f *fakeCheckoutCartRepository) GetCartLines(_ context.Context, _ string) ([]cart.CartLine, error) {
	if f.cleared {
		return nil, nil
	}
	return f.lines, nil
}

func (f *fakeCheckoutCartRepository) UpdateQuantity(_ context.Context, _ string, _ string, _ int) (int64, error) {
	return 0, nil
}

func (f *fakeCheckoutCartRepository) DeleteItem(_ context.Context, _ string, _ string) (int64, error) {
	return 0, nil
}

type fakeUserRepository struct{}

func (f *fakeUserRepository) CreateUser(_ context.Context, _ *entities.User) error { return nil }

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, _ string) (*entities.User, error) {
	return nil, errors.New("no user store in test")
}

func (f *fakeUserRepository) CreateFarmer(_ context.Context, _ *entities.Farmer) error { return nil }

func (f *fakeUserRepository) GetFarmerByUserID(_ context.Context, _ string) (*entities.Farmer, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestCheckoutEmptyCart(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	service := NewOrderService(orderRepo, &fakeCheckoutCartRepository{}, &fakeUserRepository{})

	_, err := service.Checkout(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrCartEmpty)
	assert.Empty(t, orderRepo.orders)
}

func TestCheckoutCreatesOrderWithSnapshotPrices(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	cartRepo := &fakeCheckoutCartRepository{lines: []cart.CartLine{
		{ID: uuid.New(), ProductID: p1, Name: "Tomatoes", Price: 40, Quantity: 2, TotalPrice: 80},
		{ID: uuid.New(), ProductID: p2, Name: "Honey", Price: 90, Quantity: 1, TotalPrice: 90},
	}}
	orderRepo := newFakeOrderRepository()
	service := NewOrderService(orderRepo, cartRepo, &fakeUserRepository{})

	userID := uuid.New().String()
	res, err := service.Checkout(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, float64(170), res.TotalPrice)

	orderID, err := uuid.Parse(res.OrderID)
	require.NoError(t, err)

	created := orderRepo.orders[orderID]
	require.NotNil(t, created)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
	assert.Equal(t, userID, created.UserID.String())

	items := orderRepo.items[orderID]
	require.Len(t, items, 2)
	byProduct := map[uuid.UUID]*entities.OrderItem{}
	for _, item := range items {
		assert.Equal(t, orderID, item.OrderID)
		byProduct[item.ProductID] = item
	}
	assert.Equal(t, float64(40), byProduct[p1].Price)
	assert.Equal(t, 2, byProduct[p1].Quantity)
	assert.Equal(t, float64(90), byProduct[p2].Price)
	assert.Equal(t, 1, byProduct[p2].Quantity)
}

func TestCheckoutEmptiesCart(t *testing.T) {
	cartRepo := &fakeCheckoutCartRepository{lines: []cart.CartLine{
		{ID: uuid.New(), ProductID: uuid.New(), Name: "Tomatoes", Price: 40, Quantity: 2, TotalPrice: 80},
	}}
	orderRepo := newFakeOrderRepository()
	orderRepo.cart = cartRepo
	service := NewOrderService(orderRepo, cartRepo, &fakeUserRepository{})

	userID := uuid.New().String()
	_, err := service.Checkout(context.Background(), userID)
	require.NoError(t, err)

	lines, err := cartRepo.GetCartLines(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = service.Checkout(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
	assert.Len(t, orderRepo.orders, 1)
}

func TestUpdateStatusRejectsUnknownVocabulary(t *testing.T) {
	service := NewOrderService(newFakeOrderRepository(), &fakeCheckoutCartRepository{}, &fakeUserRepository{})

	err := service.UpdateStatus(context.Background(), uuid.New().String(), "Teleported")

	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	service := NewOrderService(newFakeOrderRepository(), &fakeCheckoutCartRepository{}, &fakeUserRepository{})

	err := service.UpdateStatus(context.Background(), uuid.New().String(), domain.OrderStatusShipped)

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdateStatusAnyTransitionAllowed(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	o := &entities.Order{ID: uuid.New(), UserID: uuid.New(), Status: domain.OrderStatusDelivered}
	orderRepo.orders[o.ID] = o
	service := NewOrderService(orderRepo, &fakeCheckoutCartRepository{}, &fakeUserRepository{})

	// No state machine: Delivered back to Pending is a legal write.
	require.NoError(t, service.UpdateStatus(context.Background(), o.ID.String(), domain.OrderStatusPending))
	assert.Equal(t, domain.OrderStatusPending, o.Status)
}

func TestUpdateOwnOrderStatusEnforcesOwnership(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	owner := uuid.New()
	o := &entities.Order{ID: uuid.New(), UserID: owner, Status: domain.OrderStatusPending}
	orderRepo.orders[o.ID] = o
	service := NewOrderService(orderRepo, &fakeCheckoutCartRepository{}, &fakeUserRepository{})

	err := service.UpdateOwnOrderStatus(context.Background(), o.ID.String(), uuid.New().String(), domain.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	require.NoError(t, service.UpdateOwnOrderStatus(context.Background(), o.ID.String(), owner.String(), domain.OrderStatusCancelled))
	assert.Equal(t, domain.OrderStatusCancelled, o.Status)
}
