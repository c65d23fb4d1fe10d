package ports

import "github.com/VIPUlNEGI1/Flight/internal/domain"

type SavedRepo interface {
	LoadFlights() []domain.Flight
	SaveFlights(flights []domain.Flight) error
	LoadHotels() []domain.Hotel
	SaveHotels(hotels []domain.Hotel) error
}
