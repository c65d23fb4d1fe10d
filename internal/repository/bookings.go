package repository

import (
	"encoding/json"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/store"
)

type BookingRepository struct {
	store store.Store
}

func NewBookingRepo(s store.Store) *BookingRepository {
	return &BookingRepository{store: s}
}

func (r *BookingRepository) Append(b domain.Booking) error {
	return r.store.Update(bookingsKey, func(raw json.RawMessage) (any, error) {
		return append(decodeBookings(raw), b), nil
	})
}

func (r *BookingRepository) ListAll() []domain.Booking {
	raw, ok := r.store.Read(bookingsKey)
	if !ok {
		return nil
	}
	return decodeBookings(raw)
}

func (r *BookingRepository) ListByUser(email string) []domain.Booking {
	var out []domain.Booking
	for _, b := range r.ListAll() {
		if b.UserID == email {
			out = append(out, b)
		}
	}
	return out
}

func (r *BookingRepository) ListByOwner(ownerEmail string) []domain.Booking {
	var out []domain.Booking
	for _, b := range r.ListAll() {
		if b.HotelOwnerEmail == ownerEmail {
			out = append(out, b)
		}
	}
	return out
}

func decodeBookings(raw json.RawMessage) []domain.Booking {
	if raw == nil {
		return []domain.Booking{}
	}
	var bookings []domain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return []domain.Booking{}
	}
	return bookings
}
