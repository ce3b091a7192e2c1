package auth

import (
	"context"
	"time"

	userDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/user"
)

// User is the authenticated identity handed to handlers and embedded in
// login responses. Password material never leaves the repository layer.
type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"nome"`
	LastName    string    `json:"cognome"`
	DateOfBirth string    `json:"dob"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		CreatedAt:   u.CreatedAt,
	}
}

// UserRepository is the persistence surface the auth service needs.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	Create(u *userDatamodel.User) error
}

// TokenGenerator mints and checks session tokens.
type TokenGenerator interface {
	Issue(user *User) (string, error)
	Validate(tokenString string) (*SessionClaims, error)
}

type contextKey string

const claimsContextKey contextKey = "sessionClaims"

func ContextWithClaims(ctx context.Context, claims *SessionClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*SessionClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*SessionClaims)
	return claims, ok
}
