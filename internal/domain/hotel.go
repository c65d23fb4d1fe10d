package domain

type RoomType struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
}

type Hotel struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	Rating        int        `json:"rating"` // 1-5
	PricePerNight float64    `json:"pricePerNight"`
	ThumbnailURL  string     `json:"thumbnailUrl,omitempty"`
	Images        []string   `json:"images"`
	Amenities     []string   `json:"amenities"`
	Description   string     `json:"description,omitempty"`
	CheckInTime   string     `json:"checkInTime,omitempty"`
	CheckOutTime  string     `json:"checkOutTime,omitempty"`
	RoomTypes     []RoomType `json:"roomTypes,omitempty"`
	OwnerEmail    string     `json:"ownerEmail,omitempty"`
	IsApproved    bool       `json:"isApproved"`
}

// VisibleTo reports whether a hotel may be shown to the given caller.
// Unapproved hotels are visible only to their owner or a super-admin.
func (h Hotel) VisibleTo(s *Session) bool {
	if h.IsApproved {
		return true
	}
	if s == nil {
		return false
	}
	return s.IsSuperAdmin() || (h.OwnerEmail != "" && h.OwnerEmail == s.Email)
}
