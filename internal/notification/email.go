// Package notification delivers booking confirmations over email.
// Delivery is fire-and-forget: failures are logged, never surfaced to
// the booking flow.
package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/wb-go/wbf/logger"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
)

type EmailNotifier struct {
	client      *sendgrid.Client
	fromName    string
	fromAddress string
	logger      logger.Logger
}

func NewEmailNotifier(apiKey, fromName, fromAddress string, logger logger.Logger) *EmailNotifier {
	if apiKey == "" {
		logger.Warn("email API key is empty, notifications disabled")
		return &EmailNotifier{client: nil, logger: logger}
	}

	return &EmailNotifier{
		client:      sendgrid.NewSendClient(apiKey),
		fromName:    fromName,
		fromAddress: fromAddress,
		logger:      logger,
	}
}

func (n *EmailNotifier) NotifyBookingConfirmed(ctx context.Context, s domain.Session, b domain.Booking) {
	subject := fmt.Sprintf("Booking confirmed: %s", b.HotelName)
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your stay at %s (%s) is confirmed.\n\n"+
			"Check-in: %s\nCheck-out: %s\nGuests: %d\nTotal: $%.2f\n\n"+
			"Booking reference: %s\n",
		s.FullName, b.HotelName, b.HotelLocation,
		b.CheckInDate, b.CheckOutDate, b.Guests, b.TotalPrice,
		b.ID,
	)
	n.send(ctx, s.Email, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.client == nil {
		n.logger.Debug("notification skipped (email disabled)", logger.String("subject", subject))
		return
	}

	if to == "" {
		n.logger.Debug("notification skipped (no recipient)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("to", to))
		return
	}

	msg := mail.NewSingleEmail(
		mail.NewEmail(n.fromName, n.fromAddress),
		subject,
		mail.NewEmail("", to),
		body,
		"",
	)

	res, err := n.client.Send(msg)
	if err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
		return
	}
	if res.StatusCode >= 400 {
		n.logger.Error("email provider rejected notification",
			logger.String("to", to),
			logger.Int("status", res.StatusCode),
		)
	}
}
