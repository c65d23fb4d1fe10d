package ports

import (
	"context"

	"github.com/VIPUlNEGI1/Flight/internal/places"
)

type PlaceFinder interface {
	Lookup(ctx context.Context, query string) ([]places.Result, error)
}
