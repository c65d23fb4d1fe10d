package ports

import (
	"context"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, s domain.Session, b domain.Booking)
}
