package auth

import (
	"fmt"
	"log/slog"

	"github.com/frahmantamala/retail-management/internal"
	userDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/user"
)

const defaultMinPasswordChars = 6

// Service implements registration, credential verification and session
// token issuing on top of a user repository and a token generator.
type Service struct {
	users            UserRepository
	tokens           TokenGenerator
	minPasswordChars int
	logger           *slog.Logger
}

func NewService(users UserRepository, tokens TokenGenerator, minPasswordChars int, logger *slog.Logger) *Service {
	if minPasswordChars <= 0 {
		minPasswordChars = defaultMinPasswordChars
	}
	return &Service{
		users:            users,
		tokens:           tokens,
		minPasswordChars: minPasswordChars,
		logger:           logger,
	}
}

// Register validates the form, rejects duplicate emails, and persists the
// user with a fresh salt and digest and no company memberships.
func (s *Service) Register(dto RegisterDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if len(dto.Password) < s.minPasswordChars {
		return ValidationError{Msg: fmt.Sprintf("password must be at least %d characters", s.minPasswordChars)}
	}

	existing, err := s.users.GetByEmail(dto.Email)
	if err != nil {
		return internal.NewInternalError("failed to look up user", err)
	}
	if existing != nil {
		return internal.ErrEmailTaken
	}

	salt, err := GenerateSalt()
	if err != nil {
		return internal.NewInternalError("failed to generate salt", err)
	}

	user := &userDatamodel.User{
		Email:          dto.Email,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		DateOfBirth:    dto.DateOfBirth,
		Salt:           salt,
		PasswordDigest: HashPassword(salt, dto.Password),
	}
	if err := s.users.Create(user); err != nil {
		return internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "email", dto.Email)
	return nil
}

// Authenticate verifies credentials and returns the user plus a signed
// session token. A missing user, a record without a salt, and a wrong
// password are all reported identically.
func (s *Service) Authenticate(dto LoginDTO) (*User, string, error) {
	if err := dto.Validate(); err != nil {
		return nil, "", err
	}

	record, err := s.users.GetByEmail(dto.Email)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to look up user", err)
	}
	if record == nil || record.Salt == "" {
		return nil, "", internal.ErrInvalidCredentials
	}

	if !VerifyPassword(record.Salt, record.PasswordDigest, dto.Password) {
		return nil, "", internal.ErrInvalidCredentials
	}

	user := FromDataModel(record)
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to issue token", err)
	}

	return user, token, nil
}

// ValidateToken checks a bearer token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*SessionClaims, error) {
	return s.tokens.Validate(tokenString)
}

// GetUser loads the current profile for an authenticated identity.
func (s *Service) GetUser(id int64) (*User, error) {
	record, err := s.users.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to look up user", err)
	}
	if record == nil {
		return nil, internal.ErrUserNotFound
	}
	return FromDataModel(record), nil
}
