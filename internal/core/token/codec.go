// Package token implements the signed authentication token codec.
// Tokens are stateless: no server-side session store exists, and a token
// stays valid until its expiry even if the account is locked meanwhile.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "todoList_v2_rest"

var (
	// ErrExpired means the token was well-formed and correctly signed but
	// its lifetime has elapsed.
	ErrExpired = errors.New("token expired")
	// ErrMalformed covers structural garbage, signature mismatch and
	// unexpected signing algorithms.
	ErrMalformed = errors.New("token malformed")
)

// Claims is the decoded token payload identifying the principal.
type Claims struct {
	Subject string
	Roles   []string
}

// Codec issues and parses HS256-signed tokens. The signing key is
// read-only after construction, so a single Codec is safe for any number
// of concurrent requests.
type Codec struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewCodec builds a codec with the given signing secret and token
// lifetime.
func NewCodec(secret string, lifetime time.Duration) *Codec {
	return &Codec{secret: []byte(secret), lifetime: lifetime, now: time.Now}
}

// WithClock overrides the clock. Intended for tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Issue produces a signed token for the username and role list with
// iat = now and exp = now + lifetime.
func (c *Codec) Issue(username string, roles []string) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub":   username,
		"roles": roles,
		"iss":   issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(c.lifetime).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Parse verifies signature and expiry and returns the claims.
// Returns ErrExpired or ErrMalformed; both are caller-facing, non-fatal.
func (c *Codec) Parse(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	if !tkn.Valid {
		return nil, ErrMalformed
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrMalformed
	}

	rawRoles, _ := claims["roles"].([]interface{})
	roles := make([]string, 0, len(rawRoles))
	for _, r := range rawRoles {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}

	return &Claims{Subject: sub, Roles: roles}, nil
}
