package ports

import "github.com/VIPUlNEGI1/Flight/internal/domain"

type HotelRepo interface {
	List() []domain.Hotel
	GetByID(id string) (domain.Hotel, error)
	Add(h domain.Hotel) (domain.Hotel, error)
	Update(h domain.Hotel) (domain.Hotel, error)
	Delete(id string) error
}
