package wishlist

import (
	"context"
	"testing"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWishlistRepository struct {
	items map[uuid.UUID]*entities.WishlistItem
}

func newFakeWishlistRepository() *fakeWishlistRepository {
	return &fakeWishlistRepository{items: make(map[uuid.UUID]*entities.WishlistItem)}
}

func (f *fakeWishlistRepository) Exists(_ context.Context, userID string, productID string) (bool, error) {
	for _, item := range f.items {
		if item.UserID.String() == userID && item.ProductID.String() == productID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistRepository) AddItem(_ context.Context, item *entities.WishlistItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeWishlistRepository) GetWishlistLines(_ context.Context, userID string) ([]WishlistLine, error) {
	var lines []WishlistLine
	for _, item := range f.items {
		if item.UserID.String() == userID {
			lines = append(lines, WishlistLine{ID: item.ID, ProductID: item.ProductID})
		}
	}
	return lines, nil
}

func (f *fakeWishlistRepository) DeleteItem(_ context.Context, userID string, itemID string) (int64, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return 0, nil
	}
	item, ok := f.items[id]
	if !ok || item.UserID.String() != userID {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

func TestAddToWishlistRejectsDuplicate(t *testing.T) {
	repo := newFakeWishlistRepository()
	service := NewWishlistService(repo)

	userID := uuid.New().String()
	req := domain.AddToWishlistRequest{ProductID: uuid.New().String()}

	require.NoError(t, service.AddToWishlist(context.Background(), req, userID))
	err := service.AddToWishlist(context.Background(), req, userID)

	assert.ErrorIs(t, err, domain.ErrAlreadyInWishlist)
	assert.Len(t, repo.items, 1)
}

func TestRemoveFromWishlistScopedToOwner(t *testing.T) {
	repo := newFakeWishlistRepository()
	service := NewWishlistService(repo)

	owner := uuid.New().String()
	require.NoError(t, service.AddToWishlist(context.Background(), domain.AddToWishlistRequest{
		ProductID: uuid.New().String(),
	}, owner))

	var itemID string
	for id := range repo.items {
		itemID = id.String()
	}

	err := service.RemoveFromWishlist(context.Background(), uuid.New().String(), itemID)
	assert.ErrorIs(t, err, domain.ErrWishlistItemNotFound)

	require.NoError(t, service.RemoveFromWishlist(context.Background(), owner, itemID))
	assert.Empty(t, repo.items)
}
