package repository

import (
	"encoding/json"
	"strings"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/store"
)

type HotelRepository struct {
	store store.Store
}

func NewHotelRepo(s store.Store) *HotelRepository {
	return &HotelRepository{store: s}
}

// List returns the stored hotels merged with any seed hotels missing
// by id, then drops hotels referencing the blocked image host. The
// merge result of a corrupt or absent document is persisted; the
// missing-seed merge of a healthy document is not.
func (r *HotelRepository) List() []domain.Hotel {
	raw, ok := r.store.Read(hotelsKey)

	var loaded []domain.Hotel
	switch {
	case !ok:
		loaded = SeedHotels()
		_ = r.store.Write(hotelsKey, loaded)
	default:
		if err := json.Unmarshal(raw, &loaded); err != nil {
			loaded = SeedHotels()
			_ = r.store.Write(hotelsKey, loaded)
		} else {
			loaded = mergeMissingSeeds(loaded)
		}
	}

	return dropBlockedImages(loaded)
}

// Add appends a hotel to the raw stored collection — not the filtered
// view, so hotels hidden by the image filter are never dropped from
// disk as a side effect of an unrelated add.
func (r *HotelRepository) Add(h domain.Hotel) (domain.Hotel, error) {
	if h.ID == "" {
		h.ID = domain.NewID("hotel")
	}
	if h.Images == nil {
		h.Images = []string{}
	}
	if h.Amenities == nil {
		h.Amenities = []string{}
	}

	err := r.store.Update(hotelsKey, func(raw json.RawMessage) (any, error) {
		return append(r.decodeRaw(raw), h), nil
	})
	if err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

// Update replaces the stored record with a matching id. A missing id
// leaves the collection untouched and returns ErrHotelNotFound.
func (r *HotelRepository) Update(h domain.Hotel) (domain.Hotel, error) {
	err := r.store.Update(hotelsKey, func(raw json.RawMessage) (any, error) {
		if raw == nil {
			return nil, domain.ErrHotelNotFound
		}
		var current []domain.Hotel
		if err := json.Unmarshal(raw, &current); err != nil {
			return nil, domain.ErrHotelNotFound
		}
		for i := range current {
			if current[i].ID == h.ID {
				current[i] = h
				return current, nil
			}
		}
		return nil, domain.ErrHotelNotFound
	})
	if err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (r *HotelRepository) Delete(id string) error {
	return r.store.Update(hotelsKey, func(raw json.RawMessage) (any, error) {
		current := r.decodeRaw(raw)
		kept := make([]domain.Hotel, 0, len(current))
		found := false
		for _, h := range current {
			if h.ID == id {
				found = true
				continue
			}
			kept = append(kept, h)
		}
		if !found {
			return nil, domain.ErrHotelNotFound
		}
		return kept, nil
	})
}

// GetByID looks the hotel up in the filtered view, so hotels hidden by
// the image filter read as not found.
func (r *HotelRepository) GetByID(id string) (domain.Hotel, error) {
	for _, h := range r.List() {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrHotelNotFound
}

// decodeRaw recovers the raw stored list for read-modify-write
// operations, falling back to the seed set when absent or corrupt.
func (r *HotelRepository) decodeRaw(raw json.RawMessage) []domain.Hotel {
	if raw == nil {
		return SeedHotels()
	}
	var current []domain.Hotel
	if err := json.Unmarshal(raw, &current); err != nil {
		return SeedHotels()
	}
	return current
}

func mergeMissingSeeds(stored []domain.Hotel) []domain.Hotel {
	present := make(map[string]bool, len(stored))
	for _, h := range stored {
		present[h.ID] = true
	}
	for _, seed := range seedHotels {
		if !present[seed.ID] {
			stored = append(stored, seed)
		}
	}
	return stored
}

func dropBlockedImages(hotels []domain.Hotel) []domain.Hotel {
	kept := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if referencesBlockedHost(h) {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

func referencesBlockedHost(h domain.Hotel) bool {
	if strings.Contains(h.ThumbnailURL, blockedImageHost) {
		return true
	}
	for _, img := range h.Images {
		if strings.Contains(img, blockedImageHost) {
			return true
		}
	}
	return false
}
