// Package auth verifies the bearer tokens issued by the identity collaborator.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"wager-ledger/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RolePlayer   = "player"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

var (
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidTokenFormat = errors.New("invalid authorization header format")
	ErrInvalidToken       = errors.New("invalid token")
)

type Claims struct {
	AccountID int64  `json:"account_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Actor names the caller in audit fields: the subject when present, else the account id.
func (c *Claims) Actor() string {
	if c.Subject != "" {
		return c.Subject
	}
	return strconv.FormatInt(c.AccountID, 10)
}

// HasRole reports whether the caller holds role. Admins hold every role.
func (c *Claims) HasRole(role string) bool {
	return c.Role == role || c.Role == RoleAdmin
}

type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer}
}

// Issue signs an HS256 token. Production tokens come from the identity service;
// this exists for tooling and tests.
func (v *Verifier) Issue(accountID int64, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// FromHeader parses an "Authorization: Bearer <token>" value.
func (v *Verifier) FromHeader(header string) (*Claims, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrInvalidTokenFormat
	}
	return v.Parse(parts[1])
}

func (v *Verifier) Parse(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	switch claims.Role {
	case RolePlayer, RoleReviewer, RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	if claims.Role == RolePlayer && claims.AccountID <= 0 {
		return nil, fmt.Errorf("%w: player token without account", ErrInvalidToken)
	}
	return claims, nil
}
