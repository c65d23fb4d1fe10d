package repository

import "github.com/VIPUlNEGI1/Flight/internal/domain"

// blockedImageHost is an image provider the frontend cannot render;
// hotels referencing it are dropped from every read (never persisted
// away, so the data survives if the host is ever allowed again).
const blockedImageHost = "dynamic-media-cdn.tripadvisor.com"

var seedHotels = []domain.Hotel{
	{
		ID:            "hotel_1",
		Name:          "The Grand Palace",
		Location:      "New Delhi, India",
		Rating:        5,
		PricePerNight: 250,
		ThumbnailURL:  "https://images.unsplash.com/photo-1566073771259-6a8506099945",
		Images: []string{
			"https://images.unsplash.com/photo-1566073771259-6a8506099945",
			"https://images.unsplash.com/photo-1582719508461-905c673771fd",
		},
		Amenities:    []string{"Free WiFi", "Pool", "Spa", "Gym", "Restaurant"},
		Description:  "Opulent rooms and legendary service in the heart of the capital.",
		CheckInTime:  "14:00",
		CheckOutTime: "12:00",
		RoomTypes: []domain.RoomType{
			{Name: "Deluxe Room", Price: 250, Features: []string{"King bed", "City view"}},
			{Name: "Palace Suite", Price: 480, Features: []string{"Living room", "Butler service"}},
		},
		IsApproved: true,
	},
	{
		ID:            "hotel_2",
		Name:          "Seaside Serenity Resort",
		Location:      "Goa, India",
		Rating:        4,
		PricePerNight: 180,
		ThumbnailURL:  "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
		Images: []string{
			"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
		},
		Amenities:    []string{"Beach Access", "Pool", "Bar", "Free WiFi"},
		Description:  "Palm-lined beachfront resort with private cabanas.",
		CheckInTime:  "13:00",
		CheckOutTime: "11:00",
		RoomTypes: []domain.RoomType{
			{Name: "Garden View", Price: 180, Features: []string{"Queen bed", "Balcony"}},
			{Name: "Ocean Villa", Price: 320, Features: []string{"Private pool", "Sea view"}},
		},
		IsApproved: true,
	},
	{
		ID:            "hotel_3",
		Name:          "Mountain Vista Lodge",
		Location:      "Manali, India",
		Rating:        4,
		PricePerNight: 120,
		ThumbnailURL:  "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb",
		Images: []string{
			"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb",
		},
		Amenities:   []string{"Fireplace", "Mountain View", "Restaurant", "Free Parking"},
		Description: "Cedar lodge overlooking the Beas valley.",
		IsApproved:  true,
	},
	{
		ID:            "hotel_4",
		Name:          "Lakeview Heritage Haveli",
		Location:      "Udaipur, India",
		Rating:        5,
		PricePerNight: 210,
		// Known-bad image host: this seed entry is filtered out of every
		// read until its imagery is replaced.
		ThumbnailURL: "https://dynamic-media-cdn.tripadvisor.com/media/photo-o/1b/3c/haveli.jpg",
		Images: []string{
			"https://dynamic-media-cdn.tripadvisor.com/media/photo-o/1b/3c/haveli.jpg",
		},
		Amenities:   []string{"Lake View", "Rooftop Restaurant", "Free WiFi"},
		Description: "Restored 18th-century haveli on the shore of Lake Pichola.",
		IsApproved:  true,
	},
	{
		ID:            "hotel_5",
		Name:          "Metro Business Inn",
		Location:      "Mumbai, India",
		Rating:        3,
		PricePerNight: 90,
		ThumbnailURL:  "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa",
		Images: []string{
			"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa",
		},
		Amenities:   []string{"Free WiFi", "Airport Shuttle", "Workspace"},
		Description: "No-frills rooms minutes from the airport.",
		IsApproved:  true,
	},
	{
		ID:            "hotel_6",
		Name:          "Backwater Bliss Houseboat",
		Location:      "Alleppey, India",
		Rating:        4,
		PricePerNight: 150,
		ThumbnailURL:  "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944",
		Images: []string{
			"https://images.unsplash.com/photo-1602216056096-3b40cc0c9944",
		},
		Amenities:   []string{"All Meals", "Sun Deck", "Guided Tours"},
		Description: "Traditional kettuvallam cruising the Kerala backwaters.",
		IsApproved:  true,
	},
}

// SeedHotels returns a copy of the built-in hotel dataset, unfiltered.
func SeedHotels() []domain.Hotel {
	out := make([]domain.Hotel, len(seedHotels))
	copy(out, seedHotels)
	return out
}
