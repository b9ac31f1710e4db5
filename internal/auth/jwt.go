package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type claims struct {
	jwt.RegisteredClaims
	Role     string `json:"role"`
	BranchID *int64 `json:"branch_id,omitempty"`
}

// Gateway verifies and issues HS256 bearer tokens.
type Gateway struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewGateway(secret, issuer string) (*Gateway, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret not configured")
	}

	return &Gateway{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// Authenticate resolves a raw bearer token to an Actor.
func (g *Gateway) Authenticate(token string) (Actor, error) {
	if strings.TrimSpace(token) == "" {
		return Actor{}, ErrUnauthenticated
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(g.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)

	c := &claims{}

	parsed, err := parser.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Actor{}, ErrInvalidCredential
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return Actor{}, ErrInvalidCredential
	}

	role, err := ParseRole(c.Role)
	if err != nil {
		return Actor{}, ErrInvalidCredential
	}

	return Actor{ID: id, Role: role, BranchID: c.BranchID}, nil
}

// Issue mints a token for the actor; used by tooling and tests.
func (g *Gateway) Issue(a Actor, ttl time.Duration) (string, error) {
	now := g.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID.String(),
			Issuer:    g.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:     string(a.Role),
		BranchID: a.BranchID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
