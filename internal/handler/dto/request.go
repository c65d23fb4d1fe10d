package dto

import (
	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/flights"
)

type SignupRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type HotelRequest struct {
	Name          string            `json:"name" binding:"required"`
	Location      string            `json:"location" binding:"required"`
	Rating        int               `json:"rating"`
	PricePerNight float64           `json:"pricePerNight" binding:"required,gt=0"`
	ThumbnailURL  string            `json:"thumbnailUrl"`
	Images        []string          `json:"images"`
	Amenities     []string          `json:"amenities"`
	Description   string            `json:"description"`
	CheckInTime   string            `json:"checkInTime"`
	CheckOutTime  string            `json:"checkOutTime"`
	RoomTypes     []domain.RoomType `json:"roomTypes"`
}

func (r HotelRequest) ToDomain() domain.Hotel {
	return domain.Hotel{
		Name:          r.Name,
		Location:      r.Location,
		Rating:        r.Rating,
		PricePerNight: r.PricePerNight,
		ThumbnailURL:  r.ThumbnailURL,
		Images:        r.Images,
		Amenities:     r.Amenities,
		Description:   r.Description,
		CheckInTime:   r.CheckInTime,
		CheckOutTime:  r.CheckOutTime,
		RoomTypes:     r.RoomTypes,
	}
}

type BookHotelRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Guests       int    `json:"guests"`
}

// SelectFlightRequest carries the chosen offer back from the results
// view so the server can flatten it into review parameters.
type SelectFlightRequest struct {
	Offer     flights.Offer `json:"offer" binding:"required"`
	Itinerary int           `json:"itinerary"`
}

type SaveFlightRequest struct {
	domain.Flight
}

type SaveHotelRequest struct {
	ID string `json:"id" binding:"required"`
}
