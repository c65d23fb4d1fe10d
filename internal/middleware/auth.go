package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
)

const sessionKey = "session"

type Claims struct {
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates the bearer tokens returned by the
// auth endpoints.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Generate(s domain.Session) (string, error) {
	claims := Claims{
		FullName: s.FullName,
		Email:    s.Email,
		Role:     s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Validate(tokenString string) (*domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}

	return &domain.Session{
		FullName: claims.FullName,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}

// Auth rejects requests without a valid bearer token.
func Auth(issuer *TokenIssuer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session, err := sessionFromHeader(c, issuer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authorization required"},
			)
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// OptionalAuth attaches a session when a valid token is present and
// lets anonymous requests through untouched. Used on read endpoints
// whose results depend on who is asking.
func OptionalAuth(issuer *TokenIssuer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if session, err := sessionFromHeader(c, issuer); err == nil {
			c.Set(sessionKey, session)
		}
		c.Next()
	}
}

// RequireRole gates a route to the given roles. A super-admin always
// passes. Must run after Auth.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session := SessionFrom(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authorization required"},
			)
			return
		}
		if session.IsSuperAdmin() {
			c.Next()
			return
		}
		for _, r := range roles {
			if session.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			ginext.H{"error": domain.ErrAccessDenied.Error()},
		)
	}
}

// SessionFrom returns the authenticated session, or nil for anonymous
// requests.
func SessionFrom(c *ginext.Context) *domain.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, ok := v.(*domain.Session)
	if !ok {
		return nil
	}
	return session
}

func sessionFromHeader(c *ginext.Context, issuer *TokenIssuer) (*domain.Session, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, errors.New("missing authorization header")
	}
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil, errors.New("malformed authorization header")
	}
	return issuer.Validate(tokenString)
}
