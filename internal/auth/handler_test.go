package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/retail-management/internal"
)

// Mock ServiceAPI for handler tests
type mockAuthService struct {
	registerErr     error
	authUser        *User
	authToken       string
	authErr         error
	validateClaims  *SessionClaims
	validateErr     error
	validatedTokens []string
}

func (m *mockAuthService) Register(dto RegisterDTO) error { return m.registerErr }

func (m *mockAuthService) Authenticate(dto LoginDTO) (*User, string, error) {
	if m.authErr != nil {
		return nil, "", m.authErr
	}
	return m.authUser, m.authToken, nil
}

func (m *mockAuthService) ValidateToken(tokenString string) (*SessionClaims, error) {
	m.validatedTokens = append(m.validatedTokens, tokenString)
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	return m.validateClaims, nil
}

func (m *mockAuthService) GetUser(id int64) (*User, error) { return m.authUser, nil }

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler *Handler
		svc     *mockAuthService
	)

	ginkgo.BeforeEach(func() {
		svc = &mockAuthService{}
		handler = NewHandler(svc)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("should return the token and user on success", func() {
			svc.authUser = &User{ID: 7, Email: "alice@x.com", FirstName: "Alice"}
			svc.authToken = "signed-token"

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				strings.NewReader(`{"email":"alice@x.com","password":"secret1"}`))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			var resp AuthResponse
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Success).To(gomega.BeTrue())
			gomega.Expect(resp.Token).To(gomega.Equal("signed-token"))
			gomega.Expect(resp.User.ID).To(gomega.Equal(int64(7)))
		})

		ginkgo.It("should answer 200 with success=false on bad credentials", func() {
			svc.authErr = internal.ErrInvalidCredentials

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				strings.NewReader(`{"email":"alice@x.com","password":"wrong"}`))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			var resp AuthResponse
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Success).To(gomega.BeFalse())
			gomega.Expect(resp.Token).To(gomega.BeEmpty())
			gomega.Expect(resp.Message).To(gomega.Equal("invalid email or password"))
		})

		ginkgo.It("should answer 500 with a generic body on service faults", func() {
			svc.authErr = internal.NewInternalError("db down", nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				strings.NewReader(`{"email":"alice@x.com","password":"secret1"}`))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))
			gomega.Expect(rec.Body.String()).NotTo(gomega.ContainSubstring("db down"))
		})

		ginkgo.It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				bytes.NewReader([]byte("{not json")))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should answer success=true on a clean registration", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
				strings.NewReader(`{"nome":"Alice","cognome":"Rossi","dob":"1990-05-01","email":"alice@x.com","password":"secret1"}`))
			rec := httptest.NewRecorder()
			handler.Register(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			var resp AuthResponse
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Success).To(gomega.BeTrue())
		})

		ginkgo.It("should surface a duplicate email as success=false at 200", func() {
			svc.registerErr = internal.ErrEmailTaken

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
				strings.NewReader(`{"nome":"Alice","cognome":"Rossi","dob":"1990-05-01","email":"alice@x.com","password":"secret1"}`))
			rec := httptest.NewRecorder()
			handler.Register(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			var resp AuthResponse
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Success).To(gomega.BeFalse())
			gomega.Expect(resp.Message).To(gomega.Equal("email already registered"))
		})

		ginkgo.It("should surface validation failures as success=false at 200", func() {
			svc.registerErr = ValidationError{Msg: "date of birth is required"}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
				strings.NewReader(`{"nome":"Alice","cognome":"Rossi","email":"alice@x.com","password":"secret1"}`))
			rec := httptest.NewRecorder()
			handler.Register(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			var resp AuthResponse
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Success).To(gomega.BeFalse())
			gomega.Expect(resp.Message).To(gomega.Equal("date of birth is required"))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var (
			nextCalled bool
			seenClaims *SessionClaims
			protected  http.Handler
		)

		ginkgo.BeforeEach(func() {
			nextCalled = false
			seenClaims = nil
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seenClaims, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))
		})

		ginkgo.It("should answer 401 without an Authorization header", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("should answer 401 when the header is not a bearer token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
			req.Header.Set("Authorization", "Basic abc123")
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
		})

		ginkgo.It("should answer 401 when validation fails", func() {
			svc.validateErr = internal.ErrTokenExpired

			req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
			req.Header.Set("Authorization", "Bearer stale-token")
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalled).To(gomega.BeFalse())
			gomega.Expect(svc.validatedTokens).To(gomega.ContainElement("stale-token"))
		})

		ginkgo.It("should inject claims into the request context on success", func() {
			svc.validateClaims = &SessionClaims{UserID: 7, Email: "alice@x.com"}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(nextCalled).To(gomega.BeTrue())
			gomega.Expect(seenClaims).NotTo(gomega.BeNil())
			gomega.Expect(seenClaims.UserID).To(gomega.Equal(int64(7)))
		})
	})
})
