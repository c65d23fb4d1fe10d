// Command seedhotels initializes a data directory with the built-in
// hotel catalog. Safe to re-run: existing hotels are kept and only
// missing seeds are added on first read.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/VIPUlNEGI1/Flight/internal/repository"
	"github.com/VIPUlNEGI1/Flight/internal/store"
)

func main() {
	dataDir := flag.String("data", "data", "directory holding the JSON collections")
	flag.Parse()

	s, err := store.NewFileStore(*dataDir, filepath.Join(*dataDir, "backups"))
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	// Listing an empty collection writes the seed catalog back.
	repo := repository.NewHotelRepo(s)
	hotels := repo.List()

	fmt.Printf("seeded %s: %d hotels available\n", *dataDir, len(hotels))
	for _, h := range hotels {
		fmt.Printf("  %-12s %-28s $%.0f/night\n", h.ID, h.Name, h.PricePerNight)
	}
}
