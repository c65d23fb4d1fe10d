package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/repository"
	"github.com/VIPUlNEGI1/Flight/internal/store"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	dir := t.TempDir()
	s, err := store.NewFileStore(dir, filepath.Join(dir, "backups"))
	require.NoError(t, err)
	return s
}

var testAdmin = SuperAdminIdentity{Email: "admin@horizonstays.example", Password: "admin-pass"}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepo(newTestStore(t)), testAdmin, newTestLogger(t))
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Signup(domain.SignupInput{
		FullName: "Priya Sharma",
		Email:    "Priya@Example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "priya@example.com", user.Email)
	assert.Equal(t, domain.RoleGuest, user.Role)
}

func TestAuthService_Signup_OwnerRole(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Signup(domain.SignupInput{
		FullName: "Raj Patel",
		Email:    "raj@example.com",
		Password: "secret",
		Role:     domain.RoleHotelOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHotelOwner, user.Role)
}

func TestAuthService_Signup_SuperAdminRoleRejected(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup(domain.SignupInput{
		FullName: "Sneaky",
		Email:    "sneaky@example.com",
		Password: "secret",
		Role:     domain.RoleSuperAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup(domain.SignupInput{Email: "x@example.com", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Signup(domain.SignupInput{FullName: "X", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Signup(domain.SignupInput{FullName: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	input := domain.SignupInput{FullName: "A", Email: "dup@example.com", Password: "p"}
	_, err := svc.Signup(input)
	require.NoError(t, err)

	_, err = svc.Signup(input)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Signup_SuperAdminEmailReserved(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup(domain.SignupInput{
		FullName: "Fake Admin",
		Email:    testAdmin.Email,
		Password: "p",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Signup(domain.SignupInput{FullName: "Priya", Email: "priya@example.com", Password: "secret"})
	require.NoError(t, err)

	session, err := svc.Login("priya@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", session.Email)
	assert.Equal(t, domain.RoleGuest, session.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Signup(domain.SignupInput{FullName: "Priya", Email: "priya@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Login("priya@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_SuperAdmin(t *testing.T) {
	svc := newAuthService(t)

	session, err := svc.Login(testAdmin.Email, testAdmin.Password)
	require.NoError(t, err)
	assert.True(t, session.IsSuperAdmin())

	_, err = svc.Login(testAdmin.Email, "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ListUsers_AdminOnly(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Signup(domain.SignupInput{FullName: "Priya", Email: "priya@example.com", Password: "p"})
	require.NoError(t, err)

	admin := domain.Session{Email: testAdmin.Email, Role: domain.RoleSuperAdmin}
	users, err := svc.ListUsers(admin)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	guest := domain.Session{Email: "priya@example.com", Role: domain.RoleGuest}
	_, err = svc.ListUsers(guest)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestAuthService_DeleteUser_AdminOnly(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Signup(domain.SignupInput{FullName: "Priya", Email: "priya@example.com", Password: "p"})
	require.NoError(t, err)

	guest := domain.Session{Email: "priya@example.com", Role: domain.RoleGuest}
	assert.ErrorIs(t, svc.DeleteUser(guest, "priya@example.com"), domain.ErrAccessDenied)

	admin := domain.Session{Email: testAdmin.Email, Role: domain.RoleSuperAdmin}
	require.NoError(t, svc.DeleteUser(admin, "priya@example.com"))

	_, err = svc.Login("priya@example.com", "p")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
