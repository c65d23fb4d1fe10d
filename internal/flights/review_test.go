package flights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSegmentOffer() Offer {
	return Offer{
		ID:                     "off-1",
		Price:                  Price{Currency: "USD", Total: "645.50"},
		ValidatingAirlineCodes: []string{"AI"},
		Itineraries: []Itinerary{{
			Duration: "PT7H25M",
			Segments: []Segment{
				{
					Departure: SegmentPoint{IATACode: "DEL", At: "2026-09-10T06:00:00"},
					Arrival:   SegmentPoint{IATACode: "BOM", At: "2026-09-10T08:10:00"},
					Carrier:   "AI",
					Number:    "805",
					Aircraft:  &AircraftInfo{Code: "32N"},
					Duration:  "PT2H10M",
				},
				{
					Departure: SegmentPoint{IATACode: "BOM", At: "2026-09-10T10:30:00"},
					Arrival:   SegmentPoint{IATACode: "DXB", At: "2026-09-10T13:25:00"},
					Carrier:   "AI",
					Number:    "919",
					Duration:  "PT2H55M",
				},
			},
		}},
		TravelerPricings: []TravelerPricing{{
			FareDetailsBySegment: []FareDetails{{
				Cabin:               "ECONOMY",
				IncludedCheckedBags: &CheckedBags{Weight: 25, WeightUnit: "KG"},
			}},
		}},
	}
}

func TestBuildReviewParams_FlattensItinerary(t *testing.T) {
	v, err := BuildReviewParams(twoSegmentOffer(), 0)
	require.NoError(t, err)

	assert.Equal(t, "off-1", v.Get("flightId"))
	assert.Equal(t, "ECONOMY", v.Get("fareName"))
	assert.Equal(t, "645.50", v.Get("farePrice"))
	assert.Equal(t, "DEL", v.Get("origin"))
	assert.Equal(t, "DXB", v.Get("destination"))
	assert.Equal(t, "2026-09-10T06:00:00", v.Get("departureDate"))
	assert.Equal(t, "2026-09-10T13:25:00", v.Get("arrivalDate"))
	assert.Equal(t, "PT7H25M", v.Get("duration"))
	assert.Equal(t, "AI", v.Get("airlineName"))
	assert.Equal(t, "AI 805, AI 919", v.Get("flightNumber"))
	assert.Equal(t, "1", v.Get("stops"))
	assert.Equal(t, "7 Kg", v.Get("cabinBaggage"))
	assert.Equal(t, "25 KG", v.Get("checkInBaggage"))
	assert.Equal(t, "32N", v.Get("aircraftType"))
	assert.Equal(t, "2", v.Get("numSegments"))
	assert.Equal(t, "BOM", v.Get("segment_0_arrivalIata"))
	assert.Equal(t, "919", v.Get("segment_1_number"))
}

func TestBuildReviewParams_Fallbacks(t *testing.T) {
	o := twoSegmentOffer()
	o.ValidatingAirlineCodes = nil
	o.TravelerPricings = nil
	o.Itineraries[0].Segments[0].Aircraft = nil

	v, err := BuildReviewParams(o, 0)
	require.NoError(t, err)

	assert.Equal(t, "UNKNOWN", v.Get("fareName"))
	assert.Equal(t, "AI", v.Get("airlineName")) // first segment carrier
	assert.Equal(t, "15 Kg", v.Get("checkInBaggage"))
	assert.Equal(t, "N/A", v.Get("aircraftType"))
}

func TestBuildReviewParams_BaggagePieceCountWins(t *testing.T) {
	o := twoSegmentOffer()
	o.TravelerPricings[0].FareDetailsBySegment[0].IncludedCheckedBags = &CheckedBags{Quantity: 2}

	v, err := BuildReviewParams(o, 0)
	require.NoError(t, err)

	assert.Equal(t, "2 PC", v.Get("checkInBaggage"))
}

func TestBuildReviewParams_InvalidItinerary(t *testing.T) {
	_, err := BuildReviewParams(twoSegmentOffer(), 1)
	assert.Error(t, err)

	_, err = BuildReviewParams(twoSegmentOffer(), -1)
	assert.Error(t, err)
}

func TestReviewParams_RoundTrip(t *testing.T) {
	v, err := BuildReviewParams(twoSegmentOffer(), 0)
	require.NoError(t, err)

	review, err := ParseReviewParams(v)
	require.NoError(t, err)

	assert.Equal(t, "off-1", review.FlightID)
	assert.Equal(t, "ECONOMY", review.FareName)
	assert.Equal(t, "DEL", review.Origin)
	assert.Equal(t, "DXB", review.Destination)
	assert.Equal(t, 1, review.Stops)
	require.Len(t, review.Segments, 2)
	assert.Equal(t, "DEL", review.Segments[0].DepartureIata)
	assert.Equal(t, "AI", review.Segments[1].CarrierCode)
	assert.Equal(t, "PT2H55M", review.Segments[1].Duration)

	// Rebuilding from the parsed review's source values must be stable.
	again, err := ParseReviewParams(v)
	require.NoError(t, err)
	assert.Equal(t, review, again)
}

func TestParseReviewParams_MissingFlightID(t *testing.T) {
	v, err := BuildReviewParams(twoSegmentOffer(), 0)
	require.NoError(t, err)
	v.Del("flightId")

	_, err = ParseReviewParams(v)
	assert.Error(t, err)
}
