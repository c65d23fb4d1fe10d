package repository

import (
	"encoding/json"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/store"
)

// SavedItemsRepository persists the two saved-item snapshot
// collections. The in-memory source of truth lives in the service;
// this layer only loads once at startup and rewrites a whole
// collection per mutation.
type SavedItemsRepository struct {
	store store.Store
}

func NewSavedItemsRepo(s store.Store) *SavedItemsRepository {
	return &SavedItemsRepository{store: s}
}

func (r *SavedItemsRepository) LoadFlights() []domain.Flight {
	raw, ok := r.store.Read(savedFlightsKey)
	if !ok {
		return nil
	}
	var flights []domain.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		return nil
	}
	return flights
}

func (r *SavedItemsRepository) SaveFlights(flights []domain.Flight) error {
	return r.store.Write(savedFlightsKey, flights)
}

func (r *SavedItemsRepository) LoadHotels() []domain.Hotel {
	raw, ok := r.store.Read(savedHotelsKey)
	if !ok {
		return nil
	}
	var hotels []domain.Hotel
	if err := json.Unmarshal(raw, &hotels); err != nil {
		return nil
	}
	return hotels
}

func (r *SavedItemsRepository) SaveHotels(hotels []domain.Hotel) error {
	return r.store.Write(savedHotelsKey, hotels)
}
