package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a bearer token can fail validation.
var ErrInvalidToken = errors.New("invalid bearer token")

// JWTAuthenticator validates Supabase-issued HS256 access tokens against the
// project's JWT secret. Tokens are verified locally; no auth round trip.
type JWTAuthenticator struct {
	secret string
	aud    string
}

// NewJWTAuthenticator builds a validator. aud is optional; Supabase stamps
// "authenticated" on signed-in users.
func NewJWTAuthenticator(secret, aud string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret, aud: aud}
}

// ValidateToken parses and verifies a bearer token and extracts the user
// identity from its claims.
func (a *JWTAuthenticator) ValidateToken(token string) (*User, error) {
	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	}
	if a.aud != "" {
		opts = append(opts, jwt.WithAudience(a.aud))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	user := &User{ID: sub}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	return user, nil
}
