package flights

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

type SortKey string

const (
	SortPrice        SortKey = "price"
	SortDuration     SortKey = "duration"
	SortDeparture    SortKey = "departure"
	SortNonStopFirst SortKey = "nonStopFirst"
)

// StopFilters holds the three stop-count buckets. The filter is only
// applied when a strict subset of buckets is active.
type StopFilters struct {
	NonStop bool `json:"0"`
	OneStop bool `json:"1"`
	TwoPlus bool `json:"2+"`
}

func AllStops() StopFilters {
	return StopFilters{NonStop: true, OneStop: true, TwoPlus: true}
}

func (f StopFilters) allActive() bool {
	return f.NonStop && f.OneStop && f.TwoPlus
}

func (f StopFilters) anyActive() bool {
	return f.NonStop || f.OneStop || f.TwoPlus
}

func (f StopFilters) matches(stops int) bool {
	switch {
	case stops == 0:
		return f.NonStop
	case stops == 1:
		return f.OneStop
	default:
		return f.TwoPlus
	}
}

// Filters is the active filter state over a result set. The price
// range is seeded from PriceBounds and then adjusted by the caller.
type Filters struct {
	MinPrice float64     `json:"minPrice"`
	MaxPrice float64     `json:"maxPrice"`
	Stops    StopFilters `json:"stops"`
}

// PriceBounds computes the slider bounds for a result set: floor of
// the minimum and ceiling of the maximum observed total price. A
// degenerate range is bumped to keep max > min; no parseable prices
// yield (0, 1).
func PriceBounds(offers []Offer) (int, int) {
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for _, o := range offers {
		p, ok := o.TotalPrice()
		if !ok {
			continue
		}
		found = true
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	if !found {
		return 0, 1
	}
	minV := int(math.Floor(lo))
	maxV := int(math.Ceil(hi))
	if maxV <= minV {
		maxV = minV + 1
	}
	return minV, maxV
}

// DeriveVisibleOffers is the pure derivation the results view renders:
// price filter, then stop filter, then sort. The input slice is not
// mutated. Recompute whenever any filter or sort input changes.
func DeriveVisibleOffers(offers []Offer, f Filters, key SortKey) []Offer {
	visible := make([]Offer, len(offers))
	copy(visible, offers)

	if len(offers) > 0 && f.MaxPrice >= f.MinPrice {
		kept := visible[:0]
		for _, o := range visible {
			p, ok := o.TotalPrice()
			if !ok {
				continue
			}
			if p >= f.MinPrice && p <= f.MaxPrice {
				kept = append(kept, o)
			}
		}
		visible = kept
	}

	if f.Stops.anyActive() && !f.Stops.allActive() {
		kept := visible[:0]
		for _, o := range visible {
			if f.Stops.matches(o.Stops()) {
				kept = append(kept, o)
			}
		}
		visible = kept
	}

	sortOffers(visible, key)
	return visible
}

func sortOffers(offers []Offer, key SortKey) {
	switch key {
	case SortPrice:
		sort.SliceStable(offers, func(i, j int) bool {
			return lessByPrice(offers[i], offers[j])
		})
	case SortDuration:
		sort.SliceStable(offers, func(i, j int) bool {
			return firstItineraryMinutes(offers[i]) < firstItineraryMinutes(offers[j])
		})
	case SortDeparture:
		sort.SliceStable(offers, func(i, j int) bool {
			return firstDeparture(offers[i]).Before(firstDeparture(offers[j]))
		})
	case SortNonStopFirst:
		sort.SliceStable(offers, func(i, j int) bool {
			si, sj := offers[i].Stops(), offers[j].Stops()
			if si == 0 && sj != 0 {
				return true
			}
			if si != 0 && sj == 0 {
				return false
			}
			return lessByPrice(offers[i], offers[j])
		})
	}
}

// lessByPrice orders ascending by parsed total price, with
// unparseable prices strictly last.
func lessByPrice(a, b Offer) bool {
	pa, oka := a.TotalPrice()
	pb, okb := b.TotalPrice()
	if !oka {
		return false
	}
	if !okb {
		return true
	}
	return pa < pb
}

func firstItineraryMinutes(o Offer) int {
	if len(o.Itineraries) == 0 {
		return 0
	}
	return ParseDuration(o.Itineraries[0].Duration)
}

func firstDeparture(o Offer) time.Time {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return time.Time{}
	}
	return parseTimestamp(o.Itineraries[0].Segments[0].Departure.At)
}

// ParseDuration converts a PTnHnM-style duration into total minutes.
// Hour-only and minute-only forms are both valid; malformed components
// read as zero.
func ParseDuration(s string) int {
	t := strings.TrimPrefix(s, "PT")
	hours, minutes := 0, 0
	if i := strings.Index(t, "H"); i >= 0 {
		hours, _ = strconv.Atoi(t[:i])
		if rest := strings.TrimSuffix(t[i+1:], "M"); rest != "" {
			minutes, _ = strconv.Atoi(rest)
		}
	} else if strings.Contains(t, "M") {
		minutes, _ = strconv.Atoi(strings.TrimSuffix(t, "M"))
	}
	return hours*60 + minutes
}

// parseTimestamp handles the search API's local timestamps, which come
// without a zone offset. Unparseable values read as the zero time.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
