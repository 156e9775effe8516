package payment

import (
	"context"
	"strings"
	"testing"

	"agrimarket-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentOrderSimulatedMode(t *testing.T) {
	// No gateway credentials configured, so the service mints local ids.
	service := &paymentService{client: nil}

	res, err := service.CreatePaymentOrder(context.Background(), domain.CreatePaymentOrderRequest{
		Amount:   499.50,
		Currency: "INR",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.OrderID, "order_sim_"))
}

func TestCreatePaymentOrderRejectsNonPositiveAmount(t *testing.T) {
	service := &paymentService{client: nil}

	_, err := service.CreatePaymentOrder(context.Background(), domain.CreatePaymentOrderRequest{Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentAmount)

	_, err = service.CreatePaymentOrder(context.Background(), domain.CreatePaymentOrderRequest{Amount: -10})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentAmount)
}

func TestCreatePaymentOrderDistinctIDs(t *testing.T) {
	service := &paymentService{client: nil}

	first, err := service.CreatePaymentOrder(context.Background(), domain.CreatePaymentOrderRequest{Amount: 100})
	require.NoError(t, err)
	second, err := service.CreatePaymentOrder(context.Background(), domain.CreatePaymentOrderRequest{Amount: 100})
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID)
}
