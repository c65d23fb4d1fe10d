package domain

import "errors"

var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccessDenied       = errors.New("access denied")
)

var (
	ErrValidation = errors.New("validation error")
)
