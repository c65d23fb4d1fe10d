package ports

import "github.com/VIPUlNEGI1/Flight/internal/domain"

type BookingRepo interface {
	Append(b domain.Booking) error
	ListAll() []domain.Booking
	ListByUser(email string) []domain.Booking
	ListByOwner(ownerEmail string) []domain.Booking
}
