package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusPending   BookingStatus = "Pending"
	// BookingStatusCancelled is modeled but no code path transitions a
	// booking into it; cancellation was never implemented upstream.
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking denormalizes the hotel fields it references: later edits to
// the hotel do not propagate into existing bookings.
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"` // email of the booking user
	HotelID         string        `json:"hotelId"`
	HotelName       string        `json:"hotelName"`
	HotelLocation   string        `json:"hotelLocation"`
	HotelOwnerEmail string        `json:"hotelOwnerEmail,omitempty"`
	CheckInDate     string        `json:"checkInDate"`  // yyyy-mm-dd
	CheckOutDate    string        `json:"checkOutDate"` // yyyy-mm-dd
	Guests          int           `json:"guests"`
	TotalPrice      float64       `json:"totalPrice"`
	BookedAt        time.Time     `json:"bookedAt"`
	Status          BookingStatus `json:"status"`
}

type CreateBookingInput struct {
	CheckInDate  string
	CheckOutDate string
	Guests       int
}

type HotelEarnings struct {
	HotelID   string  `json:"hotelId"`
	HotelName string  `json:"hotelName"`
	Bookings  int     `json:"bookings"`
	Earnings  float64 `json:"earnings"`
}

type EarningsReport struct {
	TotalEarnings float64         `json:"totalEarnings"`
	TotalBookings int             `json:"totalBookings"`
	ByHotel       []HotelEarnings `json:"byHotel"`
}

type PlatformMetrics struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalHotels      int     `json:"totalHotels"`
	PendingApprovals int     `json:"pendingApprovals"`
	TotalBookings    int     `json:"totalBookings"`
	GrossRevenue     float64 `json:"grossRevenue"`
}
