package payment

import (
	"context"
	"fmt"
	"time"

	"agrimarket-backend/domain"
	"agrimarket-backend/internal/utils"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

type (
	PaymentService interface {
		CreatePaymentOrder(ctx context.Context, req domain.CreatePaymentOrderRequest) (domain.CreatePaymentOrderResponse, error)
	}

	paymentService struct {
		client *razorpay.Client
	}
)

// NewPaymentService builds the Razorpay client. Without credentials the
// service runs in simulated mode and mints local order ids, which keeps
// checkout usable in demo environments.
func NewPaymentService() PaymentService {
	keyID := utils.GetConfig("RAZORPAY_KEY_ID")
	keySecret := utils.GetConfig("RAZORPAY_KEY_SECRET")

	if keyID == "" || keySecret == "" {
		return &paymentService{client: nil}
	}
	return &paymentService{client: razorpay.NewClient(keyID, keySecret)}
}

func (s *paymentService) CreatePaymentOrder(ctx context.Context, req domain.CreatePaymentOrderRequest) (domain.CreatePaymentOrderResponse, error) {
	if req.Amount <= 0 {
		return domain.CreatePaymentOrderResponse{}, domain.ErrInvalidPaymentAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	if s.client == nil {
		return domain.CreatePaymentOrderResponse{
			OrderID: fmt.Sprintf("order_sim_%s", uuid.New().String()),
		}, nil
	}

	data := map[string]interface{}{
		// Razorpay expects the amount in minor currency units.
		"amount":   int64(req.Amount * 100),
		"currency": currency,
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
	}

	created, err := s.client.Order.Create(data, nil)
	if err != nil {
		return domain.CreatePaymentOrderResponse{}, domain.ErrPaymentGateway
	}

	orderID, ok := created["id"].(string)
	if !ok || orderID == "" {
		return domain.CreatePaymentOrderResponse{}, domain.ErrPaymentGateway
	}

	return domain.CreatePaymentOrderResponse{OrderID: orderID}, nil
}
