package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	in := domain.Session{FullName: "Priya Sharma", Email: "priya@example.com", Role: domain.RoleGuest}
	token, err := issuer.Generate(in)
	require.NoError(t, err)

	out, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, &in, out)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.Generate(domain.Session{Email: "x@example.com", Role: domain.RoleGuest})
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Generate(domain.Session{Email: "x@example.com", Role: domain.RoleGuest})
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Validate("not-a-token")
	assert.Error(t, err)
}
