package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"tutorportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendBookingConfirmation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("sends", func(t *testing.T) {
		mailer, renderer := &fakeMailer{}, &fakeRenderer{}
		svc := NewEmailService(mailer, renderer, logger)

		err := svc.SendBookingConfirmation(context.Background(), &domain.BookingConfirmationEmailData{Email: "tutor@example.com", Title: "Algebra"})

		require.NoError(t, err)
		assert.Equal(t, "booking_confirmed", renderer.name)
		assert.Equal(t, "tutor@example.com", mailer.to)
		assert.Equal(t, "subject", mailer.subject)
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{}, logger)
		assert.Error(t, svc.SendBookingConfirmation(context.Background(), nil))
	})

	t.Run("no recipient", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{}, logger)
		err := svc.SendBookingConfirmation(context.Background(), &domain.BookingConfirmationEmailData{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, mailer.to)
	})

	t.Run("render error", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{err: errors.New("bad template")}, logger)
		err := svc.SendBookingConfirmation(context.Background(), &domain.BookingConfirmationEmailData{Email: "t@example.com"})
		assert.ErrorContains(t, err, "bad template")
		assert.Empty(t, mailer.to)
	})

	t.Run("mailer error", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{err: errors.New("ses down")}, &fakeRenderer{}, logger)
		err := svc.SendBookingConfirmation(context.Background(), &domain.BookingConfirmationEmailData{Email: "t@example.com"})
		assert.ErrorContains(t, err, "ses down")
	})
}
