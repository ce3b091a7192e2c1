package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frahmantamala/retail-management/internal"
)

// SessionClaims is the self-contained session credential. Field names on the
// wire (nome, cognome, exp in unix milliseconds) match the tokens the
// previous service issued, so sessions survive the migration.
type SessionClaims struct {
	Email     string `json:"email"`
	FirstName string `json:"nome"`
	LastName  string `json:"cognome"`
	UserID    int64  `json:"id"`
	ExpiresAt int64  `json:"exp"`
}

func (c SessionClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.UnixMilli(c.ExpiresAt)), nil
}

func (c SessionClaims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c SessionClaims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c SessionClaims) GetIssuer() (string, error)              { return "", nil }
func (c SessionClaims) GetSubject() (string, error)             { return "", nil }
func (c SessionClaims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

// JWTTokenGenerator signs HS256 session tokens with a single server secret.
// There is no refresh or revocation: a token is good until its expiry.
type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

func (j *JWTTokenGenerator) Issue(user *User) (string, error) {
	claims := SessionClaims{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(j.TTL).UnixMilli(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.Secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses and checks a token string. It distinguishes an expired
// token from a malformed or tampered one; callers treat both as
// unauthenticated but the distinction is useful in logs.
func (j *JWTTokenGenerator) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return j.Secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}
