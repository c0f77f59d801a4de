package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared by services and adapters.
var (
	// ErrInvalidInput is returned when user-supplied data fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when the tutor API answers 404.
	ErrNotFound = errors.New("not found")
	// ErrNoSlotSelected is returned by a booking submit with no selected slot.
	ErrNoSlotSelected = errors.New("no slot selected")
)

// APIError is a non-2xx answer from the tutor API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tutor api returned status: %d", e.StatusCode)
	}
	return fmt.Sprintf("tutor api returned status %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match a 404 answer.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// APIMessage returns the message the tutor API attached to err, if any.
func APIMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
