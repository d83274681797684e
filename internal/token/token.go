// Package token issues and verifies the signed bearer tokens handed out at
// login. Tokens are stateless: validity is decided purely by signature and
// expiry, there is no server-side session or revocation list.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user's id as the registered subject plus an email claim.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SubjectInt returns the subject as a user id, 0 if it does not parse.
func (c *Claims) SubjectInt() int64 {
	v, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

type Service struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

func New(secret []byte, ttl time.Duration) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
	}
}

// Issue signs a token for the given user expiring ttl from now.
func (s *Service) Issue(userID int64, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string. It fails on a bad signature,
// a malformed token, a non-HS256 signing method, or expiry.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	var claims Claims

	tok, err := s.parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
