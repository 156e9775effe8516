package invoice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"agrimarket-backend/domain"
	"agrimarket-backend/pkg/order"
	"agrimarket-backend/pkg/user"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

const invoiceDir = "invoices"

type (
	InvoiceService interface {
		Render(ctx context.Context, orderID string, userID string) (domain.Invoice, error)
	}

	invoiceService struct {
		orderRepository order.OrderRepository
		userRepository  user.UserRepository
	}
)

func NewInvoiceService(orderRepository order.OrderRepository, userRepository user.UserRepository) InvoiceService {
	return &invoiceService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
	}
}

// Render produces the single-page order invoice for the order's owner. The
// product list is the comma-joined names of the line items; quantities and
// per-line prices are not itemized.
func (s *invoiceService) Render(ctx context.Context, orderID string, userID string) (domain.Invoice, error) {
	ord, err := s.orderRepository.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Invoice{}, domain.ErrOrderNotFound
		}
		return domain.Invoice{}, err
	}

	names, err := s.orderRepository.GetOrderItemProductNames(ctx, orderID)
	if err != nil {
		return domain.Invoice{}, err
	}

	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.Invoice{}, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Invoice")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Customer: %s (%s)", owner.Name, owner.Email))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Order ID: %s", ord.ID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", ord.CreatedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", ord.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Products")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, strings.Join(names, ", "), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return domain.Invoice{}, err
	}

	filename := fmt.Sprintf("Invoice_Order_%s.pdf", ord.ID)
	writeLocalCopy(filename, buf.Bytes())

	return domain.Invoice{
		Filename: filename,
		PDF:      buf.Bytes(),
	}, nil
}

func writeLocalCopy(filename string, data []byte) {
	if err := os.MkdirAll(invoiceDir, os.ModePerm); err != nil {
		log.Printf("invoice dir not created: %v", err)
		return
	}
	if err := os.WriteFile(filepath.Join(invoiceDir, filename), data, 0o644); err != nil {
		log.Printf("invoice not written locally: %v", err)
	}
}
