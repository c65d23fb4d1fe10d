// Package repository implements collection access over the local
// persistence store. Keys are the ones the stored data already uses;
// changing any of them orphans existing documents (there is no
// migration mechanism, a format change requires a manual reset).
package repository

const (
	usersKey        = "usersDB"
	hotelsKey       = "appHotelsDB"
	bookingsKey     = "appBookingsDB"
	savedFlightsKey = "horizonStays_savedFlights"
	savedHotelsKey  = "horizonStays_savedHotels"
)
