package dto

import (
	"github.com/VIPUlNEGI1/Flight/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is the public view of an account. The stored password
// never leaves the server.
type UserResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type SavedItemsResponse struct {
	Flights []domain.Flight `json:"flights"`
	Hotels  []domain.Hotel  `json:"hotels"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		FullName: u.FullName,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}

func ToSessionResponse(s *domain.Session) UserResponse {
	return UserResponse{
		FullName: s.FullName,
		Email:    s.Email,
		Role:     string(s.Role),
	}
}
