package domain

// Flight is the card-level snapshot a user saves for later reference.
// It is a flattened view of a search offer, not a live reference.
type Flight struct {
	ID               string   `json:"id"`
	Airline          string   `json:"airline"`
	AirlineLogoURL   string   `json:"airlineLogoUrl,omitempty"`
	FlightNumber     string   `json:"flightNumber"`
	From             string   `json:"from"`
	To               string   `json:"to"`
	DepartureTime    string   `json:"departureTime"`
	ArrivalTime      string   `json:"arrivalTime"`
	Duration         string   `json:"duration"`
	Price            float64  `json:"price"`
	Stops            int      `json:"stops"`
	DepartureAirport string   `json:"departureAirport"`
	ArrivalAirport   string   `json:"arrivalAirport"`
	AircraftType     string   `json:"aircraftType,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
}
