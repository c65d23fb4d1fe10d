package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/flights"
	"github.com/VIPUlNEGI1/Flight/internal/service/ports"
)

// FlightSearchInput is one search request plus the view state applied
// to its results. Price overrides are optional; when absent the full
// observed price range passes through.
type FlightSearchInput struct {
	Query    flights.SearchQuery
	MinPrice *float64
	MaxPrice *float64
	Stops    *flights.StopFilters
	SortBy   flights.SortKey
}

// FlightSearchOutput carries the visible offers along with the price
// slider bounds derived from the unfiltered result set.
type FlightSearchOutput struct {
	Offers       []flights.Offer       `json:"offers"`
	Count        int                   `json:"count"`
	MinPrice     int                   `json:"minPrice"`
	MaxPrice     int                   `json:"maxPrice"`
	Dictionaries *flights.Dictionaries `json:"dictionaries,omitempty"`
}

type FlightSearchService struct {
	searcher   ports.OfferSearcher
	maxResults int
	logger     logger.Logger
}

func NewFlightSearchService(searcher ports.OfferSearcher, maxResults int, logger logger.Logger) *FlightSearchService {
	return &FlightSearchService{
		searcher:   searcher,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Search fetches offers and derives the visible result set. The price
// bounds are always computed over the full fetched set; filter
// overrides narrow within them. A non-stop search forces the non-stop
// bucket and the non-stop-first ordering.
func (s *FlightSearchService) Search(ctx context.Context, input FlightSearchInput) (*FlightSearchOutput, error) {
	if input.Query.Origin == "" || input.Query.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", domain.ErrValidation)
	}
	if input.Query.DepartureDate == "" {
		return nil, fmt.Errorf("%w: departure date is required", domain.ErrValidation)
	}
	if input.Query.Max <= 0 {
		input.Query.Max = s.maxResults
	}

	res, err := s.searcher.SearchOffers(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	minPrice, maxPrice := flights.PriceBounds(res.Data)

	f := flights.Filters{
		MinPrice: float64(minPrice),
		MaxPrice: float64(maxPrice),
		Stops:    flights.AllStops(),
	}
	if input.MinPrice != nil {
		f.MinPrice = *input.MinPrice
	}
	if input.MaxPrice != nil {
		f.MaxPrice = *input.MaxPrice
	}
	if input.Stops != nil {
		f.Stops = *input.Stops
	}

	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = flights.SortPrice
	}
	if input.Query.NonStop {
		f.Stops = flights.StopFilters{NonStop: true}
		sortBy = flights.SortNonStopFirst
	}

	visible := flights.DeriveVisibleOffers(res.Data, f, sortBy)

	s.logger.Info("flight search completed",
		logger.String("origin", input.Query.Origin),
		logger.String("destination", input.Query.Destination),
		logger.Int("fetched", len(res.Data)),
		logger.Int("visible", len(visible)),
	)

	return &FlightSearchOutput{
		Offers:       visible,
		Count:        len(visible),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Dictionaries: res.Dictionaries,
	}, nil
}
