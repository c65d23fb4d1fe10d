package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/flights"
	"github.com/VIPUlNEGI1/Flight/internal/handler/dto"
	"github.com/VIPUlNEGI1/Flight/internal/middleware"
	"github.com/VIPUlNEGI1/Flight/internal/places"
	"github.com/VIPUlNEGI1/Flight/internal/service"
)

type AuthSvc interface {
	Signup(input domain.SignupInput) (*domain.User, error)
	Login(email, password string) (*domain.Session, error)
	ListUsers(caller domain.Session) ([]domain.User, error)
	DeleteUser(caller domain.Session, email string) error
}

type HotelSvc interface {
	List(caller *domain.Session) []domain.Hotel
	Get(caller *domain.Session, id string) (domain.Hotel, error)
	Register(caller domain.Session, h domain.Hotel) (domain.Hotel, error)
	Update(caller domain.Session, h domain.Hotel) (domain.Hotel, error)
	Approve(caller domain.Session, id string) (domain.Hotel, error)
	Delete(caller domain.Session, id string) error
	Lookup(ctx context.Context, query string) ([]places.Result, error)
}

type BookingSvc interface {
	Create(ctx context.Context, caller domain.Session, hotelID string, input domain.CreateBookingInput) (*domain.Booking, error)
	ListByUser(caller domain.Session) []domain.Booking
	ListByOwner(caller domain.Session) ([]domain.Booking, error)
	OwnerEarnings(caller domain.Session) (*domain.EarningsReport, error)
	PlatformMetrics(caller domain.Session) (*domain.PlatformMetrics, error)
}

type SavedSvc interface {
	Flights() []domain.Flight
	Hotels() []domain.Hotel
	SaveFlight(f domain.Flight) error
	RemoveFlight(id string) error
	SaveHotel(h domain.Hotel) error
	RemoveHotel(id string) error
}

type FlightSvc interface {
	Search(ctx context.Context, input service.FlightSearchInput) (*service.FlightSearchOutput, error)
}

type Handler struct {
	authService    AuthSvc
	hotelService   HotelSvc
	bookingService BookingSvc
	savedService   SavedSvc
	flightService  FlightSvc
	tokens         *middleware.TokenIssuer
}

func NewHandler(
	authService AuthSvc,
	hotelService HotelSvc,
	bookingService BookingSvc,
	savedService SavedSvc,
	flightService FlightSvc,
	tokens *middleware.TokenIssuer,
) *Handler {
	return &Handler{
		authService:    authService,
		hotelService:   hotelService,
		bookingService: bookingService,
		savedService:   savedService,
		flightService:  flightService,
		tokens:         tokens,
	}
}

// Auth

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Signup(domain.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	session := domain.Session{FullName: user.FullName, Email: user.Email, Role: user.Role}
	token, err := h.tokens.Generate(session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.Generate(*session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToSessionResponse(session),
	})
}

// Flights

func (h *Handler) SearchFlights(c *ginext.Context) {
	input, err := parseSearchInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out, err := h.flightService.Search(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// SelectFlight flattens the chosen offer into review parameters and
// returns the query string the client navigates to.
func (h *Handler) SelectFlight(c *ginext.Context) {
	var req dto.SelectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	params, err := flights.BuildReviewParams(req.Offer, req.Itinerary)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ginext.H{"reviewQuery": params.Encode()})
}

func (h *Handler) ReviewFlight(c *ginext.Context) {
	review, err := flights.ParseReviewParams(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

// Hotels

func (h *Handler) ListHotels(c *ginext.Context) {
	hotels := h.hotelService.List(middleware.SessionFrom(c))
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *Handler) GetHotel(c *ginext.Context) {
	hotel, err := h.hotelService.Get(middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (h *Handler) RegisterHotel(c *ginext.Context) {
	var req dto.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	hotel, err := h.hotelService.Register(*middleware.SessionFrom(c), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

func (h *Handler) UpdateHotel(c *ginext.Context) {
	var req dto.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	hotel := req.ToDomain()
	hotel.ID = c.Param("id")

	updated, err := h.hotelService.Update(*middleware.SessionFrom(c), hotel)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ApproveHotel(c *ginext.Context) {
	hotel, err := h.hotelService.Approve(*middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (h *Handler) DeleteHotel(c *ginext.Context) {
	if err := h.hotelService.Delete(*middleware.SessionFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) LookupHotel(c *ginext.Context) {
	results, err := h.hotelService.Lookup(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if results == nil {
		results = []places.Result{}
	}
	c.JSON(http.StatusOK, results)
}

// Bookings

func (h *Handler) BookHotel(c *ginext.Context) {
	var req dto.BookHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(
		c.Request.Context(),
		*middleware.SessionFrom(c),
		c.Param("id"),
		domain.CreateBookingInput{
			CheckInDate:  req.CheckInDate,
			CheckOutDate: req.CheckOutDate,
			Guests:       req.Guests,
		},
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings := h.bookingService.ListByUser(*middleware.SessionFrom(c))
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) ListOwnerBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByOwner(*middleware.SessionFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) OwnerEarnings(c *ginext.Context) {
	report, err := h.bookingService.OwnerEarnings(*middleware.SessionFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Saved items

func (h *Handler) GetSaved(c *ginext.Context) {
	flightsSaved := h.savedService.Flights()
	hotelsSaved := h.savedService.Hotels()
	if flightsSaved == nil {
		flightsSaved = []domain.Flight{}
	}
	if hotelsSaved == nil {
		hotelsSaved = []domain.Hotel{}
	}
	c.JSON(http.StatusOK, dto.SavedItemsResponse{Flights: flightsSaved, Hotels: hotelsSaved})
}

func (h *Handler) SaveFlight(c *ginext.Context) {
	var req dto.SaveFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.savedService.SaveFlight(req.Flight); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ginext.H{"status": "saved"})
}

func (h *Handler) RemoveSavedFlight(c *ginext.Context) {
	if err := h.savedService.RemoveFlight(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "removed"})
}

// SaveHotel snapshots the referenced hotel into the saved collection.
func (h *Handler) SaveHotel(c *ginext.Context) {
	var req dto.SaveHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	hotel, err := h.hotelService.Get(middleware.SessionFrom(c), req.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.savedService.SaveHotel(hotel); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ginext.H{"status": "saved"})
}

func (h *Handler) RemoveSavedHotel(c *ginext.Context) {
	if err := h.savedService.RemoveHotel(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "removed"})
}

// Admin

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.authService.ListUsers(*middleware.SessionFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(&u))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	if err := h.authService.DeleteUser(*middleware.SessionFrom(c), c.Param("email")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) PlatformMetrics(c *ginext.Context) {
	metrics, err := h.bookingService.PlatformMetrics(*middleware.SessionFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// parseSearchInput reads the flight search and view-state parameters
// from the query string. The stops parameter is a comma list of
// buckets, e.g. "0,1" or "2+".
func parseSearchInput(c *ginext.Context) (service.FlightSearchInput, error) {
	input := service.FlightSearchInput{
		Query: flights.SearchQuery{
			Origin:        strings.ToUpper(c.Query("origin")),
			Destination:   strings.ToUpper(c.Query("destination")),
			DepartureDate: c.Query("departureDate"),
			ReturnDate:    c.Query("returnDate"),
			TravelClass:   c.Query("travelClass"),
			NonStop:       c.Query("nonStop") == "true",
		},
		SortBy: flights.SortKey(c.Query("sortBy")),
	}

	var err error
	if input.Query.Adults, err = intQuery(c, "adults"); err != nil {
		return input, err
	}
	if input.Query.Children, err = intQuery(c, "children"); err != nil {
		return input, err
	}
	if input.Query.Infants, err = intQuery(c, "infants"); err != nil {
		return input, err
	}
	if input.Query.Max, err = intQuery(c, "max"); err != nil {
		return input, err
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, errors.New("invalid minPrice")
		}
		input.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, errors.New("invalid maxPrice")
		}
		input.MaxPrice = &v
	}

	if raw := c.Query("stops"); raw != "" {
		var f flights.StopFilters
		for _, bucket := range strings.Split(raw, ",") {
			switch strings.TrimSpace(bucket) {
			case "0":
				f.NonStop = true
			case "1":
				f.OneStop = true
			case "2+":
				f.TwoPlus = true
			default:
				return input, errors.New("invalid stops bucket, expected 0, 1 or 2+")
			}
		}
		input.Stops = &f
	}

	return input, nil
}

func intQuery(c *ginext.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAccessDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, flights.ErrAuthFailed),
		errors.Is(err, flights.ErrSearchFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, places.ErrMissingAPIKey):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
