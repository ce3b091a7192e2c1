package auth

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/retail-management/internal"
	userDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/user"
)

// Mock UserRepository for testing
type mockUserRepository struct {
	byEmail       map[string]*userDatamodel.User
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		byEmail: map[string]*userDatamodel.User{},
		nextID:  1,
	}
}

func (m *mockUserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	return m.byEmail[email], nil
}

func (m *mockUserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) Create(u *userDatamodel.User) error {
	if m.returnError {
		return m.errorToReturn
	}
	u.ID = m.nextID
	m.nextID++
	m.byEmail[u.Email] = u
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("test-secret-at-least-32-characters!!", 24*time.Hour)
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(mockRepo, tokenGen, 6, slogger)
	})

	registerAlice := func() {
		err := service.Register(RegisterDTO{
			FirstName:   "Alice",
			LastName:    "Rossi",
			DateOfBirth: "1990-05-01",
			Email:       "alice@x.com",
			Password:    "secret1",
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	}

	ginkgo.Describe("Register", func() {
		ginkgo.It("should persist a salted digest and no plaintext", func() {
			registerAlice()

			record := mockRepo.byEmail["alice@x.com"]
			gomega.Expect(record).NotTo(gomega.BeNil())
			gomega.Expect(record.Salt).To(gomega.MatchRegexp(`^[0-9a-f]{32}$`))
			gomega.Expect(record.PasswordDigest).To(gomega.Equal(HashPassword(record.Salt, "secret1")))
			gomega.Expect(record.PasswordDigest).NotTo(gomega.ContainSubstring("secret1"))
		})

		ginkgo.It("should reject a missing name", func() {
			err := service.Register(RegisterDTO{
				DateOfBirth: "1990-05-01",
				Email:       "alice@x.com",
				Password:    "secret1",
			})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should reject a missing date of birth", func() {
			err := service.Register(RegisterDTO{
				FirstName: "Alice",
				LastName:  "Rossi",
				Email:     "alice@x.com",
				Password:  "secret1",
			})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should reject an email without an @", func() {
			err := service.Register(RegisterDTO{
				FirstName:   "Alice",
				LastName:    "Rossi",
				DateOfBirth: "1990-05-01",
				Email:       "alice.example.com",
				Password:    "secret1",
			})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should reject a short password", func() {
			err := service.Register(RegisterDTO{
				FirstName:   "Alice",
				LastName:    "Rossi",
				DateOfBirth: "1990-05-01",
				Email:       "alice@x.com",
				Password:    "12345",
			})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should reject a duplicate email even with a different password", func() {
			registerAlice()

			err := service.Register(RegisterDTO{
				FirstName:   "Alice",
				LastName:    "Rossi",
				DateOfBirth: "1990-05-01",
				Email:       "alice@x.com",
				Password:    "different-password",
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrEmailTaken))
		})

		ginkgo.It("should surface repository failures as internal errors", func() {
			mockRepo.returnError = true
			mockRepo.errorToReturn = errors.New("connection refused")

			err := service.Register(RegisterDTO{
				FirstName:   "Alice",
				LastName:    "Rossi",
				DateOfBirth: "1990-05-01",
				Email:       "alice@x.com",
				Password:    "secret1",
			})
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeInternal))
		})
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.BeforeEach(registerAlice)

		ginkgo.It("should return the user and a verifiable token on correct credentials", func() {
			user, token, err := service.Authenticate(LoginDTO{Email: "alice@x.com", Password: "secret1"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(user.Email).To(gomega.Equal("alice@x.com"))

			claims, err := tokenGen.Validate(token)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal(user.ID))
			gomega.Expect(claims.FirstName).To(gomega.Equal("Alice"))
		})

		ginkgo.It("should reject a wrong password", func() {
			_, _, err := service.Authenticate(LoginDTO{Email: "alice@x.com", Password: "wrongpass"})
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
		})

		ginkgo.It("should reject an unknown email the same way", func() {
			_, _, err := service.Authenticate(LoginDTO{Email: "nobody@x.com", Password: "secret1"})
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
		})

		ginkgo.It("should reject a record without a salt", func() {
			mockRepo.byEmail["alice@x.com"].Salt = ""
			_, _, err := service.Authenticate(LoginDTO{Email: "alice@x.com", Password: "secret1"})
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
		})
	})

	ginkgo.Describe("GetUser", func() {
		ginkgo.It("should report a missing user", func() {
			_, err := service.GetUser(999)
			gomega.Expect(err).To(gomega.Equal(internal.ErrUserNotFound))
		})
	})
})
