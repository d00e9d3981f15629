package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/bruxa61/financas/internal/models"
	"github.com/bruxa61/financas/internal/repositories/repository_mocks"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUserRepo  *repository_mocks.MockUserRepositoryInterface
	signingSecret []byte
	e             *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUserRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.signingSecret = []byte("test-signing-secret")
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) signToken(claims *AuthClaims, secret []byte) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) validClaims(subject string) *AuthClaims {
	return &AuthClaims{
		Email:     "alice@example.com",
		FirstName: "Alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func (s *AuthMiddlewareSuite) callProtected(authHeader string) (*httptest.ResponseRecorder, error) {
	middleware := RequireAuth(s.signingSecret, s.mockUserRepo)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"user_id": c.Get(UserIDContextKey).(string)})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	return rec, handler(c)
}

func (s *AuthMiddlewareSuite) assertErrorCode(rec *httptest.ResponseRecorder, code string) {
	var body map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(code, body["error"]["code"])
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token := s.signToken(s.validClaims("user-1"), s.signingSecret)

	s.mockUserRepo.EXPECT().
		EnsureExists(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			s.Equal("user-1", user.ID)
			s.Require().NotNil(user.Email)
			s.Equal("alice@example.com", *user.Email)
			s.Require().NotNil(user.FirstName)
			s.Equal("Alice", *user.FirstName)
			return nil
		})

	rec, err := s.callProtected("Bearer " + token)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "user-1")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec, err := s.callProtected("")
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.assertErrorCode(rec, "AUTH_001")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	for _, header := range []string{"Bearer", "Bearer ", "Token abc.def.ghi", "abc.def.ghi"} {
		rec, err := s.callProtected(header)
		s.NoError(err)
		s.Equal(http.StatusUnauthorized, rec.Code, "header %q", header)
		s.assertErrorCode(rec, "AUTH_003")
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	claims := s.validClaims("user-1")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	token := s.signToken(claims, s.signingSecret)

	rec, err := s.callProtected("Bearer " + token)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.assertErrorCode(rec, "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_WrongSecret() {
	token := s.signToken(s.validClaims("user-1"), []byte("some-other-secret"))

	rec, err := s.callProtected("Bearer " + token)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.assertErrorCode(rec, "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UnexpectedSigningMethod() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, s.validClaims("user-1")).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	rec, err := s.callProtected("Bearer " + token)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.assertErrorCode(rec, "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingSubject() {
	claims := s.validClaims("")
	token := s.signToken(claims, s.signingSecret)

	rec, err := s.callProtected("Bearer " + token)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.assertErrorCode(rec, "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ProvisioningFailure() {
	token := s.signToken(s.validClaims("user-1"), s.signingSecret)

	s.mockUserRepo.EXPECT().EnsureExists(gomock.Any()).Return(errors.New("database is down"))

	rec, err := s.callProtected("Bearer " + token)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.assertErrorCode(rec, "SYSTEM_001")
}
