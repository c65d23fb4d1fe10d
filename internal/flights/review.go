package flights

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Review is the flat summary of a selected offer that the booking
// review step renders. It is encoded into URL query parameters by
// BuildReviewParams and decoded back by ParseReviewParams; the two
// round-trip exactly.
type Review struct {
	FlightID      string          `json:"flightId"`
	FareName      string          `json:"fareName"`
	FarePrice     string          `json:"farePrice"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	DepartureDate string          `json:"departureDate"`
	ArrivalDate   string          `json:"arrivalDate"`
	Duration      string          `json:"duration"`
	AirlineName   string          `json:"airlineName"`
	FlightNumber  string          `json:"flightNumber"`
	Stops         int             `json:"stops"`
	CabinBaggage  string          `json:"cabinBaggage"`
	CheckInBag    string          `json:"checkInBaggage"`
	AircraftType  string          `json:"aircraftType"`
	Segments      []ReviewSegment `json:"segments"`
}

// ReviewSegment carries the per-leg details shown on the review page.
type ReviewSegment struct {
	DepartureAt   string `json:"departureAt"`
	DepartureIata string `json:"departureIata"`
	ArrivalAt     string `json:"arrivalAt"`
	ArrivalIata   string `json:"arrivalIata"`
	Duration      string `json:"duration"`
	CarrierCode   string `json:"carrierCode"`
	Number        string `json:"number"`
}

// BuildReviewParams flattens one itinerary of an offer into the review
// query parameters. itineraryIdx selects outbound (0) or return (1).
func BuildReviewParams(o Offer, itineraryIdx int) (url.Values, error) {
	if itineraryIdx < 0 || itineraryIdx >= len(o.Itineraries) {
		return nil, fmt.Errorf("offer %s has no itinerary %d", o.ID, itineraryIdx)
	}
	it := o.Itineraries[itineraryIdx]
	if len(it.Segments) == 0 {
		return nil, fmt.Errorf("offer %s itinerary %d has no segments", o.ID, itineraryIdx)
	}
	first := it.Segments[0]
	last := it.Segments[len(it.Segments)-1]

	v := url.Values{}
	v.Set("flightId", o.ID)
	v.Set("fareName", fareName(o))
	v.Set("farePrice", o.Price.Total)
	v.Set("origin", first.Departure.IATACode)
	v.Set("destination", last.Arrival.IATACode)
	v.Set("departureDate", first.Departure.At)
	v.Set("arrivalDate", last.Arrival.At)
	v.Set("duration", it.Duration)
	v.Set("airlineName", airlineName(o, first))
	v.Set("flightNumber", flightNumbers(it))
	v.Set("stops", strconv.Itoa(len(it.Segments)-1))
	v.Set("cabinBaggage", "7 Kg")
	v.Set("checkInBaggage", checkInBaggage(o))
	v.Set("aircraftType", aircraftType(first))
	v.Set("numSegments", strconv.Itoa(len(it.Segments)))
	for i, s := range it.Segments {
		prefix := fmt.Sprintf("segment_%d_", i)
		v.Set(prefix+"departureAt", s.Departure.At)
		v.Set(prefix+"departureIata", s.Departure.IATACode)
		v.Set(prefix+"arrivalAt", s.Arrival.At)
		v.Set(prefix+"arrivalIata", s.Arrival.IATACode)
		v.Set(prefix+"duration", s.Duration)
		v.Set(prefix+"carrierCode", s.Carrier)
		v.Set(prefix+"number", s.Number)
	}
	return v, nil
}

// ParseReviewParams reconstructs a Review from query parameters
// produced by BuildReviewParams.
func ParseReviewParams(v url.Values) (*Review, error) {
	if v.Get("flightId") == "" {
		return nil, fmt.Errorf("review params missing flightId")
	}
	stops, _ := strconv.Atoi(v.Get("stops"))
	numSegments, _ := strconv.Atoi(v.Get("numSegments"))

	r := &Review{
		FlightID:      v.Get("flightId"),
		FareName:      v.Get("fareName"),
		FarePrice:     v.Get("farePrice"),
		Origin:        v.Get("origin"),
		Destination:   v.Get("destination"),
		DepartureDate: v.Get("departureDate"),
		ArrivalDate:   v.Get("arrivalDate"),
		Duration:      v.Get("duration"),
		AirlineName:   v.Get("airlineName"),
		FlightNumber:  v.Get("flightNumber"),
		Stops:         stops,
		CabinBaggage:  v.Get("cabinBaggage"),
		CheckInBag:    v.Get("checkInBaggage"),
		AircraftType:  v.Get("aircraftType"),
	}
	for i := 0; i < numSegments; i++ {
		prefix := fmt.Sprintf("segment_%d_", i)
		r.Segments = append(r.Segments, ReviewSegment{
			DepartureAt:   v.Get(prefix + "departureAt"),
			DepartureIata: v.Get(prefix + "departureIata"),
			ArrivalAt:     v.Get(prefix + "arrivalAt"),
			ArrivalIata:   v.Get(prefix + "arrivalIata"),
			Duration:      v.Get(prefix + "duration"),
			CarrierCode:   v.Get(prefix + "carrierCode"),
			Number:        v.Get(prefix + "number"),
		})
	}
	return r, nil
}

// fareName reports the first cabin class found on the traveler
// pricings, or UNKNOWN when none is present.
func fareName(o Offer) string {
	for _, tp := range o.TravelerPricings {
		for _, fd := range tp.FareDetailsBySegment {
			if fd.Cabin != "" {
				return fd.Cabin
			}
		}
	}
	return "UNKNOWN"
}

// airlineName prefers the validating airline code and falls back to
// the first segment's operating carrier.
func airlineName(o Offer, first Segment) string {
	if len(o.ValidatingAirlineCodes) > 0 && o.ValidatingAirlineCodes[0] != "" {
		return o.ValidatingAirlineCodes[0]
	}
	return first.Carrier
}

func flightNumbers(it Itinerary) string {
	nums := make([]string, 0, len(it.Segments))
	for _, s := range it.Segments {
		nums = append(nums, s.Carrier+" "+s.Number)
	}
	return strings.Join(nums, ", ")
}

// checkInBaggage renders the checked-bag allowance: a piece count when
// quantity is set, a weight with unit otherwise, and a 15 Kg default
// when the fare carries no allowance data.
func checkInBaggage(o Offer) string {
	for _, tp := range o.TravelerPricings {
		for _, fd := range tp.FareDetailsBySegment {
			bags := fd.IncludedCheckedBags
			if bags == nil {
				continue
			}
			if bags.Quantity > 0 {
				return fmt.Sprintf("%d PC", bags.Quantity)
			}
			if bags.Weight > 0 {
				unit := bags.WeightUnit
				if unit == "" {
					unit = "Kg"
				}
				return fmt.Sprintf("%d %s", bags.Weight, unit)
			}
		}
	}
	return "15 Kg"
}

func aircraftType(first Segment) string {
	if first.Aircraft != nil && first.Aircraft.Code != "" {
		return first.Aircraft.Code
	}
	return "N/A"
}
