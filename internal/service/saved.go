package service

import (
	"fmt"
	"sync"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/service/ports"
)

// SavedItemsService keeps the saved flights and hotels in memory as
// the source of truth, loading once at construction and rewriting the
// whole persisted collection after every mutation. Mutations are
// idempotent: re-saving an item or removing an absent one is a no-op.
type SavedItemsService struct {
	mu      sync.Mutex
	repo    ports.SavedRepo
	flights []domain.Flight
	hotels  []domain.Hotel
}

func NewSavedItemsService(repo ports.SavedRepo) *SavedItemsService {
	return &SavedItemsService{
		repo:    repo,
		flights: repo.LoadFlights(),
		hotels:  repo.LoadHotels(),
	}
}

func (s *SavedItemsService) Flights() []domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Flight, len(s.flights))
	copy(out, s.flights)
	return out
}

func (s *SavedItemsService) Hotels() []domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Hotel, len(s.hotels))
	copy(out, s.hotels)
	return out
}

func (s *SavedItemsService) SaveFlight(f domain.Flight) error {
	if f.ID == "" {
		f.ID = domain.NewID("flight")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.flights {
		if existing.ID == f.ID {
			return nil
		}
	}
	s.flights = append(s.flights, f)
	if err := s.repo.SaveFlights(s.flights); err != nil {
		return fmt.Errorf("persist saved flights: %w", err)
	}
	return nil
}

func (s *SavedItemsService) RemoveFlight(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.flights[:0]
	removed := false
	for _, f := range s.flights {
		if f.ID == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return nil
	}
	s.flights = kept
	if err := s.repo.SaveFlights(s.flights); err != nil {
		return fmt.Errorf("persist saved flights: %w", err)
	}
	return nil
}

func (s *SavedItemsService) IsFlightSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.flights {
		if f.ID == id {
			return true
		}
	}
	return false
}

func (s *SavedItemsService) SaveHotel(h domain.Hotel) error {
	if h.ID == "" {
		return fmt.Errorf("%w: hotel id is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.hotels {
		if existing.ID == h.ID {
			return nil
		}
	}
	s.hotels = append(s.hotels, h)
	if err := s.repo.SaveHotels(s.hotels); err != nil {
		return fmt.Errorf("persist saved hotels: %w", err)
	}
	return nil
}

func (s *SavedItemsService) RemoveHotel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.hotels[:0]
	removed := false
	for _, h := range s.hotels {
		if h.ID == id {
			removed = true
			continue
		}
		kept = append(kept, h)
	}
	if !removed {
		return nil
	}
	s.hotels = kept
	if err := s.repo.SaveHotels(s.hotels); err != nil {
		return fmt.Errorf("persist saved hotels: %w", err)
	}
	return nil
}

func (s *SavedItemsService) IsHotelSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hotels {
		if h.ID == id {
			return true
		}
	}
	return false
}
