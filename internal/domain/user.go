package domain

type Role string

const (
	RoleGuest      Role = "guest"
	RoleHotelOwner Role = "hotel_owner"
	RoleSuperAdmin Role = "super_admin"
)

// User is a platform account. Email acts as the primary key; the
// password is stored as-is, matching the data shape the web client
// produced (credential hardening is explicitly out of scope).
type User struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

type SignupInput struct {
	FullName string
	Email    string
	Password string
	Role     Role
}

// Session is the authenticated identity threaded through service
// calls. The super-admin session is synthesized from configuration and
// never exists in the users collection.
type Session struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func (s Session) IsSuperAdmin() bool {
	return s.Role == RoleSuperAdmin
}
