package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/service/ports"
)

const dateLayout = "2006-01-02"

type BookingService struct {
	bookingRepo ports.BookingRepo
	hotelRepo   ports.HotelRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	hotelRepo ports.HotelRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create books a hotel stay for the caller. Missing dates default to a
// one-night-from-tomorrow stay of two nights with one guest; the total
// is the hotel's nightly price times the number of nights. The booking
// snapshots the hotel fields it shows, so later hotel edits do not
// touch it. Bookings are final: there is no cancellation path.
func (s *BookingService) Create(ctx context.Context, caller domain.Session, hotelID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	hotel, err := s.hotelRepo.GetByID(hotelID)
	if err != nil {
		return nil, fmt.Errorf("check hotel: %w", err)
	}
	if !hotel.VisibleTo(&caller) {
		return nil, domain.ErrHotelNotFound
	}

	checkIn, checkOut := normalizeStay(input.CheckInDate, input.CheckOutDate)
	guests := input.Guests
	if guests <= 0 {
		guests = 1
	}

	booking := domain.Booking{
		ID:              domain.NewID("booking"),
		UserID:          caller.Email,
		HotelID:         hotel.ID,
		HotelName:       hotel.Name,
		HotelLocation:   hotel.Location,
		HotelOwnerEmail: hotel.OwnerEmail,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          guests,
		TotalPrice:      hotel.PricePerNight * float64(nightsBetween(checkIn, checkOut)),
		BookedAt:        time.Now().UTC(),
		Status:          domain.BookingStatusConfirmed,
	}

	if err := s.bookingRepo.Append(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("hotel_id", hotel.ID),
		logger.String("user", caller.Email),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), caller, booking)

	return &booking, nil
}

func (s *BookingService) ListByUser(caller domain.Session) []domain.Booking {
	return s.bookingRepo.ListByUser(caller.Email)
}

func (s *BookingService) ListByOwner(caller domain.Session) ([]domain.Booking, error) {
	if caller.Role != domain.RoleHotelOwner && !caller.IsSuperAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return s.bookingRepo.ListByOwner(caller.Email), nil
}

// OwnerEarnings aggregates the caller's bookings into per-hotel
// booking counts and earnings.
func (s *BookingService) OwnerEarnings(caller domain.Session) (*domain.EarningsReport, error) {
	if caller.Role != domain.RoleHotelOwner && !caller.IsSuperAdmin() {
		return nil, domain.ErrAccessDenied
	}

	report := &domain.EarningsReport{}
	byHotel := make(map[string]*domain.HotelEarnings)
	var order []string

	for _, b := range s.bookingRepo.ListByOwner(caller.Email) {
		report.TotalBookings++
		report.TotalEarnings += b.TotalPrice

		he, ok := byHotel[b.HotelID]
		if !ok {
			he = &domain.HotelEarnings{HotelID: b.HotelID, HotelName: b.HotelName}
			byHotel[b.HotelID] = he
			order = append(order, b.HotelID)
		}
		he.Bookings++
		he.Earnings += b.TotalPrice
	}

	for _, id := range order {
		report.ByHotel = append(report.ByHotel, *byHotel[id])
	}
	return report, nil
}

// PlatformMetrics summarizes the whole platform for the admin
// dashboard.
func (s *BookingService) PlatformMetrics(caller domain.Session) (*domain.PlatformMetrics, error) {
	if !caller.IsSuperAdmin() {
		return nil, domain.ErrAccessDenied
	}

	m := &domain.PlatformMetrics{
		TotalUsers: len(s.userRepo.List()),
	}
	for _, h := range s.hotelRepo.List() {
		m.TotalHotels++
		if !h.IsApproved {
			m.PendingApprovals++
		}
	}
	for _, b := range s.bookingRepo.ListAll() {
		m.TotalBookings++
		m.GrossRevenue += b.TotalPrice
	}
	return m, nil
}

// normalizeStay fills missing or unparseable dates with the default
// stay: check-in tomorrow, check-out two nights later. A check-out on
// or before check-in is pushed to the next day.
func normalizeStay(checkIn, checkOut string) (string, string) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		in = today.AddDate(0, 0, 1)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		out = in.AddDate(0, 0, 2)
	}
	if !out.After(in) {
		out = in.AddDate(0, 0, 1)
	}
	return in.Format(dateLayout), out.Format(dateLayout)
}

// nightsBetween counts nights between two normalized yyyy-mm-dd dates,
// never less than one.
func nightsBetween(checkIn, checkOut string) int {
	in, err1 := time.Parse(dateLayout, checkIn)
	out, err2 := time.Parse(dateLayout, checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	nights := int(math.Round(out.Sub(in).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}
