// Package flights implements the flight offer pipeline: the external
// search API client, the pure filter/sort derivation over fetched
// offers, and the review-parameters codec used between result
// selection and the booking-review step.
package flights

import "strconv"

// Offer models the external search API's flight offer shape. Offers
// are immutable and held only in memory for the duration of a search.
type Offer struct {
	ID                     string            `json:"id"`
	Type                   string            `json:"type,omitempty"`
	Source                 string            `json:"source,omitempty"`
	OneWay                 bool              `json:"oneWay"`
	LastTicketingDate      string            `json:"lastTicketingDate,omitempty"`
	NumberOfBookableSeats  int               `json:"numberOfBookableSeats,omitempty"`
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  Price             `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes,omitempty"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings,omitempty"`
}

// Itinerary is one directional journey (outbound or return) composed
// of one or more segments in chronological order.
type Itinerary struct {
	Duration string    `json:"duration"` // PTnHnM
	Segments []Segment `json:"segments"`
}

// Segment is a single flight leg between two airports.
type Segment struct {
	ID        string        `json:"id,omitempty"`
	Departure SegmentPoint  `json:"departure"`
	Arrival   SegmentPoint  `json:"arrival"`
	Carrier   string        `json:"carrierCode"`
	Number    string        `json:"number"`
	Aircraft  *AircraftInfo `json:"aircraft,omitempty"`
	Duration  string        `json:"duration"`
}

type SegmentPoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type AircraftInfo struct {
	Code string `json:"code"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base,omitempty"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

type TravelerPricing struct {
	TravelerID           string        `json:"travelerId,omitempty"`
	FareOption           string        `json:"fareOption,omitempty"`
	TravelerType         string        `json:"travelerType,omitempty"`
	Price                Price         `json:"price"`
	FareDetailsBySegment []FareDetails `json:"fareDetailsBySegment,omitempty"`
}

type FareDetails struct {
	SegmentID           string       `json:"segmentId,omitempty"`
	Cabin               string       `json:"cabin"`
	FareBasis           string       `json:"fareBasis,omitempty"`
	Class               string       `json:"class,omitempty"`
	IncludedCheckedBags *CheckedBags `json:"includedCheckedBags,omitempty"`
}

type CheckedBags struct {
	Quantity   int    `json:"quantity,omitempty"`
	Weight     int    `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
}

// OffersResponse is the search endpoint's envelope.
type OffersResponse struct {
	Meta         *Meta         `json:"meta,omitempty"`
	Data         []Offer       `json:"data"`
	Dictionaries *Dictionaries `json:"dictionaries,omitempty"`
}

type Meta struct {
	Count int `json:"count"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers,omitempty"`
	Aircraft map[string]string `json:"aircraft,omitempty"`
}

// Stops counts layovers on the first itinerary. Offers without
// itineraries report zero.
func (o Offer) Stops() int {
	if len(o.Itineraries) == 0 {
		return 0
	}
	return len(o.Itineraries[0].Segments) - 1
}

// TotalPrice parses the decimal-string total. ok is false for
// unparseable prices; such offers are dropped by the price filter and
// sorted last by the price sorts.
func (o Offer) TotalPrice() (float64, bool) {
	p, err := strconv.ParseFloat(o.Price.Total, 64)
	if err != nil {
		return 0, false
	}
	return p, true
}
