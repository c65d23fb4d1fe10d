package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)

	SearchFlights(c *ginext.Context)
	SelectFlight(c *ginext.Context)
	ReviewFlight(c *ginext.Context)

	ListHotels(c *ginext.Context)
	GetHotel(c *ginext.Context)
	RegisterHotel(c *ginext.Context)
	UpdateHotel(c *ginext.Context)
	ApproveHotel(c *ginext.Context)
	DeleteHotel(c *ginext.Context)
	LookupHotel(c *ginext.Context)

	BookHotel(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	ListOwnerBookings(c *ginext.Context)
	OwnerEarnings(c *ginext.Context)

	GetSaved(c *ginext.Context)
	SaveFlight(c *ginext.Context)
	RemoveSavedFlight(c *ginext.Context)
	SaveHotel(c *ginext.Context)
	RemoveSavedHotel(c *ginext.Context)

	ListUsers(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	PlatformMetrics(c *ginext.Context)
}

// Middlewares groups the route-level guards. Global middleware
// (request id, logging, recovery) is passed separately.
type Middlewares struct {
	Auth           ginext.HandlerFunc
	OptionalAuth   ginext.HandlerFunc
	OwnerOnly      ginext.HandlerFunc
	SuperAdminOnly ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, mw Middlewares, global ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(global...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)

		// Flights
		api.GET("/flights/search", h.SearchFlights)
		api.POST("/flights/select", h.SelectFlight)
		api.GET("/flights/review", h.ReviewFlight)

		// Hotels
		api.GET("/hotels", mw.OptionalAuth, h.ListHotels)
		api.GET("/hotels/lookup", mw.Auth, mw.OwnerOnly, h.LookupHotel)
		api.GET("/hotels/:id", mw.OptionalAuth, h.GetHotel)
		api.POST("/hotels", mw.Auth, mw.OwnerOnly, h.RegisterHotel)
		api.PUT("/hotels/:id", mw.Auth, h.UpdateHotel)
		api.DELETE("/hotels/:id", mw.Auth, h.DeleteHotel)
		api.POST("/hotels/:id/approve", mw.Auth, mw.SuperAdminOnly, h.ApproveHotel)
		api.POST("/hotels/:id/book", mw.Auth, h.BookHotel)

		// Bookings
		api.GET("/bookings", mw.Auth, h.ListMyBookings)
		api.GET("/owner/bookings", mw.Auth, mw.OwnerOnly, h.ListOwnerBookings)
		api.GET("/owner/earnings", mw.Auth, mw.OwnerOnly, h.OwnerEarnings)

		// Saved items
		api.GET("/saved", h.GetSaved)
		api.POST("/saved/flights", h.SaveFlight)
		api.DELETE("/saved/flights/:id", h.RemoveSavedFlight)
		api.POST("/saved/hotels", mw.OptionalAuth, h.SaveHotel)
		api.DELETE("/saved/hotels/:id", h.RemoveSavedHotel)

		// Admin
		api.GET("/admin/users", mw.Auth, mw.SuperAdminOnly, h.ListUsers)
		api.DELETE("/admin/users/:email", mw.Auth, mw.SuperAdminOnly, h.DeleteUser)
		api.GET("/admin/metrics", mw.Auth, mw.SuperAdminOnly, h.PlatformMetrics)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
