package ports

import (
	"context"

	"github.com/VIPUlNEGI1/Flight/internal/flights"
)

type OfferSearcher interface {
	SearchOffers(ctx context.Context, q flights.SearchQuery) (*flights.OffersResponse, error)
}
