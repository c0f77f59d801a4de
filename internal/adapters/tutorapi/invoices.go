package tutorapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tutorportal/internal/domain"
)

var _ domain.InvoiceAPI = (*Client)(nil)

// ListInvoices calls GET /api/invoices.
func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return getList[domain.Invoice](ctx, c, "/api/invoices", nil)
}

// CreateInvoice calls POST /api/invoices.
func (c *Client) CreateInvoice(ctx context.Context, inv domain.NewInvoice) (*domain.Invoice, error) {
	var created domain.Invoice
	if err := c.postJSON(ctx, "/api/invoices", inv, &created, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &created, nil
}

// PayInvoice calls POST /api/invoices/{id}/pay and returns the checkout session to redirect to.
func (c *Client) PayInvoice(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	var session domain.CheckoutSession
	if err := c.postJSON(ctx, "/api/invoices/"+url.PathEscape(id)+"/pay", nil, &session); err != nil {
		return nil, err
	}
	if session.SessionID == "" && session.URL == "" {
		return nil, fmt.Errorf("pay invoice %s: response has neither sessionId nor url", id)
	}
	return &session, nil
}
