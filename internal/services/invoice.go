package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tutorportal/internal/domain"
)

type invoiceService struct {
	api            domain.InvoiceAPI
	contextTimeout time.Duration
}

// NewInvoiceService returns the service behind the Invoices page.
func NewInvoiceService(api domain.InvoiceAPI, timeout time.Duration) domain.InvoiceService {
	return &invoiceService{api: api, contextTimeout: timeout}
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invoices, err := s.api.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) Create(ctx context.Context, in *domain.NewInvoice) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in == nil || in.Amount <= 0 || strings.TrimSpace(in.StudentID) == "" {
		return nil, fmt.Errorf("%w: a positive amount and a student are required", domain.ErrInvalidInput)
	}
	created, err := s.api.CreateInvoice(ctx, domain.NewInvoice{
		Amount:    in.Amount,
		StudentID: strings.TrimSpace(in.StudentID),
	})
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return created, nil
}

// Pay asks the tutor API for a checkout session. Capturing the payment is the
// processor's job.
func (s *invoiceService) Pay(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: invoice id is required", domain.ErrInvalidInput)
	}
	session, err := s.api.PayInvoice(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pay invoice %s: %w", id, err)
	}
	return session, nil
}
