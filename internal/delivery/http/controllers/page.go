package controllers

import (
	"errors"
	"net/http"

	"tutorportal/internal/delivery/http/views"
	"tutorportal/internal/domain"
)

// PageRenderer renders a named HTML page.
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, name string, p views.Page)
}

// failureMessage prefixes the tutor API's own message when it sent one,
// otherwise the error text, mirroring "Failed to create student: <reason>".
func failureMessage(prefix string, err error) string {
	if msg, ok := domain.APIMessage(err); ok {
		return prefix + ": " + msg
	}
	return prefix + ": " + err.Error()
}

// statusFor maps a service error to the status of the re-rendered form page.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
