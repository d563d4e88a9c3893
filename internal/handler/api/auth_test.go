//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/user"
	"github.com/leburgeon/ecom-backapi/internal/handler/api"
	resdto "github.com/leburgeon/ecom-backapi/internal/handler/dto/response"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"
	"github.com/leburgeon/ecom-backapi/tests/common/httptest"
	commandsmock "github.com/leburgeon/ecom-backapi/tests/mock/commands"
	queriesmock "github.com/leburgeon/ecom-backapi/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	authedUserID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.authedUserID = uuid.New()

	s.router.POST("/api/auth/register", s.handler.Register)
	s.router.POST("/api/auth/login", s.handler.Login)
	s.router.GET("/api/auth/me", func(c *gin.Context) {
		// Stands in for RequireAuth: a bearer header authenticates the
		// fixture user.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.authedUserID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) userFixture(id uuid.UUID) *user.User {
	email, err := user.NewEmail("jane@example.com")
	s.Require().NoError(err)
	now := time.Now()
	return user.ReconstructUser(id, "Jane", email, "hash", user.RoleCustomer, now, now)
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/api/auth/register"
	reqBody := map[string]any{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "password123",
	}

	s.Run("success: returns 201 Created with the new user id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), "Jane", "jane@example.com", "password123").
			Return(newID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
	})

	s.Run("error: 409 Conflict for a taken email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []map[string]any{
			{"name": "Jane", "email": "not-an-email", "password": "password123"},
			{"name": "Jane", "email": "jane@example.com", "password": "short"},
			{"email": "jane@example.com", "password": "password123"},
		}
		for _, body := range cases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"
	reqBody := map[string]any{
		"email":    "jane@example.com",
		"password": "password123",
	}

	s.Run("success: returns 200 OK with token and user", func() {
		returnUser := s.userFixture(uuid.New())
		s.mockCommands.EXPECT().Login(gomock.Any(), "jane@example.com", "password123").
			Return(&commands.AuthResult{Token: "test-jwt-token", User: returnUser}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("jane@example.com", response.User.Email)
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/api/auth/me"

	s.Run("success: returns the authenticated profile", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), s.authedUserID).
			Return(&queries.UserProfile{
				ID:    s.authedUserID,
				Name:  "Jane",
				Email: "jane@example.com",
				Role:  user.RoleCustomer,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.authedUserID, response.ID)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
