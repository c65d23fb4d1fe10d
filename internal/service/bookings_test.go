package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/repository"
)

type fakeNotifier struct {
	notified chan domain.Booking
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notified: make(chan domain.Booking, 4)}
}

func (f *fakeNotifier) NotifyBookingConfirmed(ctx context.Context, s domain.Session, b domain.Booking) {
	f.notified <- b
}

type bookingFixture struct {
	svc      *BookingService
	hotels   *HotelService
	notifier *fakeNotifier
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()
	s := newTestStore(t)
	log := newTestLogger(t)

	hotelRepo := repository.NewHotelRepo(s)
	userRepo := repository.NewUserRepo(s)
	bookingRepo := repository.NewBookingRepo(s)
	notifier := newFakeNotifier()

	return bookingFixture{
		svc:      NewBookingService(bookingRepo, hotelRepo, userRepo, notifier, log),
		hotels:   NewHotelService(hotelRepo, &fakePlaceFinder{}, log),
		notifier: notifier,
	}
}

func (f bookingFixture) approvedHotel(t *testing.T, price float64) domain.Hotel {
	t.Helper()
	created, err := f.hotels.Register(adminSession, domain.Hotel{
		Name: "Test Stay", Location: "Pune, India", PricePerNight: price,
	})
	require.NoError(t, err)
	return created
}

func TestBookingService_Create_TotalIsNightsTimesPrice(t *testing.T) {
	f := newBookingFixture(t)
	hotel := f.approvedHotel(t, 100)

	booking, err := f.svc.Create(context.Background(), guestSession, hotel.ID, domain.CreateBookingInput{
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		Guests:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, booking.TotalPrice)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, guestSession.Email, booking.UserID)
	assert.Equal(t, hotel.Name, booking.HotelName)
	assert.Contains(t, booking.ID, "booking_")

	select {
	case notified := <-f.notifier.notified:
		assert.Equal(t, booking.ID, notified.ID)
	case <-time.After(time.Second):
		t.Fatal("expected booking notification")
	}
}

func TestBookingService_Create_DefaultsStay(t *testing.T) {
	f := newBookingFixture(t)
	hotel := f.approvedHotel(t, 80)

	booking, err := f.svc.Create(context.Background(), guestSession, hotel.ID, domain.CreateBookingInput{})
	require.NoError(t, err)

	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Format("2006-01-02"), booking.CheckInDate)
	assert.Equal(t, tomorrow.AddDate(0, 0, 2).Format("2006-01-02"), booking.CheckOutDate)
	assert.Equal(t, 1, booking.Guests)
	assert.Equal(t, 160.0, booking.TotalPrice) // two default nights
}

func TestBookingService_Create_CheckOutBeforeCheckIn(t *testing.T) {
	f := newBookingFixture(t)
	hotel := f.approvedHotel(t, 50)

	booking, err := f.svc.Create(context.Background(), guestSession, hotel.ID, domain.CreateBookingInput{
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-09",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-11", booking.CheckOutDate)
	assert.Equal(t, 50.0, booking.TotalPrice)
}

func TestBookingService_Create_UnknownHotel(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), guestSession, "hotel_missing", domain.CreateBookingInput{})
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

func TestBookingService_Create_UnapprovedHotelHiddenFromGuests(t *testing.T) {
	f := newBookingFixture(t)

	pending, err := f.hotels.Register(ownerSession, domain.Hotel{
		Name: "Pending", Location: "Delhi, India", PricePerNight: 60,
	})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), guestSession, pending.ID, domain.CreateBookingInput{})
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

func TestBookingService_ListByOwner_RoleGated(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.ListByOwner(guestSession)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	bookings, err := f.svc.ListByOwner(ownerSession)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingService_OwnerEarnings(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.hotels.Register(ownerSession, domain.Hotel{
		Name: "Raj Residency", Location: "Mumbai, India", PricePerNight: 100,
	})
	require.NoError(t, err)
	_, err = f.hotels.Approve(adminSession, created.ID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = f.svc.Create(context.Background(), guestSession, created.ID, domain.CreateBookingInput{
			CheckInDate:  "2026-09-10",
			CheckOutDate: "2026-09-13",
		})
		require.NoError(t, err)
	}

	report, err := f.svc.OwnerEarnings(ownerSession)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalBookings)
	assert.Equal(t, 600.0, report.TotalEarnings)
	require.Len(t, report.ByHotel, 1)
	assert.Equal(t, created.ID, report.ByHotel[0].HotelID)
	assert.Equal(t, 2, report.ByHotel[0].Bookings)
}

func TestBookingService_PlatformMetrics_AdminOnly(t *testing.T) {
	f := newBookingFixture(t)
	hotel := f.approvedHotel(t, 100)

	_, err := f.svc.Create(context.Background(), guestSession, hotel.ID, domain.CreateBookingInput{
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
	})
	require.NoError(t, err)

	_, err = f.svc.PlatformMetrics(ownerSession)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	metrics, err := f.svc.PlatformMetrics(adminSession)
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.TotalBookings)
	assert.Equal(t, 200.0, metrics.GrossRevenue)
	assert.GreaterOrEqual(t, metrics.TotalHotels, 1)
}
