package service

import (
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/service/ports"
)

// SuperAdminIdentity is the configured platform administrator. It is
// checked before the users collection on login and never stored there.
type SuperAdminIdentity struct {
	Email    string
	Password string
}

type AuthService struct {
	repo       ports.UserRepo
	superAdmin SuperAdminIdentity
	logger     logger.Logger
}

func NewAuthService(repo ports.UserRepo, superAdmin SuperAdminIdentity, logger logger.Logger) *AuthService {
	return &AuthService{
		repo:       repo,
		superAdmin: superAdmin,
		logger:     logger,
	}
}

func (s *AuthService) Signup(input domain.SignupInput) (*domain.User, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleGuest
	}
	if role != domain.RoleGuest && role != domain.RoleHotelOwner {
		return nil, fmt.Errorf("%w: role %q cannot be self-assigned", domain.ErrValidation, role)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if strings.EqualFold(email, s.superAdmin.Email) {
		return nil, domain.ErrEmailTaken
	}

	user := domain.User{
		FullName: input.FullName,
		Email:    email,
		Role:     role,
		Password: input.Password,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up",
		logger.String("email", user.Email),
		logger.String("role", string(user.Role)),
	)

	return &user, nil
}

// Login resolves credentials to a session. The configured super-admin
// identity is checked first, so it works even with an empty users
// collection.
func (s *AuthService) Login(email, password string) (*domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.superAdmin.Email != "" &&
		strings.EqualFold(email, s.superAdmin.Email) &&
		password == s.superAdmin.Password {
		return &domain.Session{
			FullName: "Super Admin",
			Email:    s.superAdmin.Email,
			Role:     domain.RoleSuperAdmin,
		}, nil
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Session{
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (s *AuthService) ListUsers(caller domain.Session) ([]domain.User, error) {
	if !caller.IsSuperAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return s.repo.List(), nil
}

func (s *AuthService) DeleteUser(caller domain.Session, email string) error {
	if !caller.IsSuperAdmin() {
		return domain.ErrAccessDenied
	}
	if err := s.repo.Delete(strings.ToLower(strings.TrimSpace(email))); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info("user deleted",
		logger.String("email", email),
		logger.String("deleted_by", caller.Email),
	)
	return nil
}
