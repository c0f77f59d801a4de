package domain

import (
	"context"
	"time"
)

// Invoice statuses.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice is a bill for a student.
type Invoice struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	StudentName string    `json:"studentName"`
}

// Payable reports whether the invoice can still be sent to checkout.
func (i Invoice) Payable() bool {
	return i.Status == InvoiceStatusPending
}

// NewInvoice is the create payload for POST /api/invoices.
type NewInvoice struct {
	Amount    float64 `json:"amount" form:"amount" validate:"required,gt=0"`
	StudentID string  `json:"studentId" form:"studentId" validate:"required,notblank"`
}

// CheckoutSession is the answer of POST /api/invoices/{id}/pay. Payment itself
// happens at the external processor; URL is set when the API knows the hosted
// checkout page, otherwise the session id is handed to the processor's script.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url,omitempty"`
}

// InvoiceAPI is the invoices side of the tutor API.
type InvoiceAPI interface {
	ListInvoices(ctx context.Context) ([]Invoice, error)
	CreateInvoice(ctx context.Context, inv NewInvoice) (*Invoice, error)
	PayInvoice(ctx context.Context, id string) (*CheckoutSession, error)
}

// InvoiceService defines the operations behind the Invoices page.
type InvoiceService interface {
	List(ctx context.Context) ([]Invoice, error)
	Create(ctx context.Context, inv *NewInvoice) (*Invoice, error)
	Pay(ctx context.Context, id string) (*CheckoutSession, error)
}
