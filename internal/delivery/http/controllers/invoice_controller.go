package controllers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"tutorportal/internal/delivery/http/helpers"
	"tutorportal/internal/delivery/http/views"
	"tutorportal/internal/domain"
)

// Messages shown on the Invoices page.
const (
	MsgFetchInvoicesFailed = "Failed to fetch invoices. Please try again later."
	MsgCreateInvoiceFailed = "Failed to create invoice. Please try again."
	MsgPaymentFailed       = "Payment processing failed. Please try again."
	msgInvalidInvoice      = "Failed to create invoice"
)

// InvoiceForm holds the typed fields of the create form.
type InvoiceForm struct {
	Amount    string
	StudentID string
}

// InvoicesPage is the model of the Invoices page.
type InvoicesPage struct {
	Invoices []domain.Invoice
	Students []domain.Student
	Form     InvoiceForm
}

// CheckoutPage is the model of the processor hand-off page.
type CheckoutPage struct {
	SessionID      string
	PublishableKey string
}

type InvoiceController struct {
	Logger         *slog.Logger
	Service        domain.InvoiceService
	Students       domain.StudentService
	Views          PageRenderer
	PublishableKey string
}

func NewInvoiceController(logger *slog.Logger, svc domain.InvoiceService, students domain.StudentService, v PageRenderer, publishableKey string) *InvoiceController {
	return &InvoiceController{Logger: logger, Service: svc, Students: students, Views: v, PublishableKey: publishableKey}
}

// List renders the invoices and the create form. The checkout page sends the
// browser back with payment=failed when the processor refuses the session.
func (c *InvoiceController) List(w http.ResponseWriter, r *http.Request) {
	page := views.Page{Title: "Invoices", Path: "/invoices"}
	if r.URL.Query().Get("payment") == "failed" {
		page.Error = MsgPaymentFailed
	}
	c.renderList(w, r, http.StatusOK, page, InvoiceForm{})
}

// Create validates and creates an invoice, then redirects to the list.
func (c *InvoiceController) Create(w http.ResponseWriter, r *http.Request) {
	page := views.Page{Title: "Invoices", Path: "/invoices"}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := InvoiceForm{
		Amount:    strings.TrimSpace(r.PostFormValue("amount")),
		StudentID: strings.TrimSpace(r.PostFormValue("studentId")),
	}

	// Unparsable and non-finite amounts count as missing.
	amount, err := strconv.ParseFloat(form.Amount, 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
		amount = 0
	}
	in := domain.NewInvoice{Amount: amount, StudentID: form.StudentID}
	if msgs := helpers.ValidateStruct(in); len(msgs) > 0 {
		page.Error = msgInvalidInvoice + ": " + strings.Join(msgs, ", ")
		c.renderList(w, r, http.StatusBadRequest, page, form)
		return
	}

	if _, err := c.Service.Create(r.Context(), &in); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		page.Error = MsgCreateInvoiceFailed
		c.renderList(w, r, statusFor(err), page, form)
		return
	}
	http.Redirect(w, r, "/invoices", http.StatusSeeOther)
}

// Pay asks the tutor API for a checkout session and hands the browser to the
// payment processor: straight to its hosted page when the API returned one,
// otherwise through the checkout page and the processor's script.
func (c *InvoiceController) Pay(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session, err := c.Service.Pay(r.Context(), id)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "invoice_id", id, "err", err)
		c.renderList(w, r, statusFor(err), views.Page{Title: "Invoices", Path: "/invoices", Error: MsgPaymentFailed}, InvoiceForm{})
		return
	}
	if session.URL != "" {
		http.Redirect(w, r, session.URL, http.StatusSeeOther)
		return
	}
	if c.PublishableKey == "" {
		c.Logger.ErrorContext(r.Context(), "checkout session has no url and no publishable key is configured", "invoice_id", id)
		c.renderList(w, r, http.StatusInternalServerError, views.Page{Title: "Invoices", Path: "/invoices", Error: MsgPaymentFailed}, InvoiceForm{})
		return
	}
	c.Views.Render(w, http.StatusOK, views.PageCheckout, views.Page{
		Title: "Checkout",
		Path:  "/invoices",
		Data:  CheckoutPage{SessionID: session.SessionID, PublishableKey: c.PublishableKey},
	})
}

func (c *InvoiceController) renderList(w http.ResponseWriter, r *http.Request, status int, page views.Page, form InvoiceForm) {
	invoices, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if page.Error == "" {
			page.Error = MsgFetchInvoicesFailed
		}
	}
	students, err := c.Students.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if page.Error == "" {
			page.Error = MsgFetchStudentsFailed
		}
	}
	page.Data = InvoicesPage{Invoices: invoices, Students: students, Form: form}
	c.Views.Render(w, status, views.PageInvoices, page)
}
