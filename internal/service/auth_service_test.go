package service_test // メインコードとは別のパッケージにすることで、公開されているものしかテストできなくなる

import (
	"errors"
	"testing"
	"time"

	"darae_api/internal/config"
	"darae_api/internal/model"
	"darae_api/internal/repository"
	"darae_api/internal/repository/mocks"
	"darae_api/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// --- テストスイートの定義 ---
type AuthServiceTestSuite struct {
	suite.Suite

	cfg         *config.Config
	authService service.AuthService
}

// 各テストの前にクリーンなDBとサービスを用意する
func (s *AuthServiceTestSuite) SetupTest() {
	s.cfg = &config.Config{
		App: config.AppConfig{Name: "Darae API"},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 7 * 24 * time.Hour,
		},
	}
	db := setupTestDB(s.T())
	s.authService = service.NewAuthService(db, repository.NewGormUserRepository(), s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) register(username, email string) *model.User {
	user, err := s.authService.Register(ctx, &model.RegisterRequest{
		Username:    username,
		Email:       email,
		DisplayName: "Test User",
		Password:    "password123",
	})
	s.Require().NoError(err)
	return user
}

func (s *AuthServiceTestSuite) TestRegister() {
	user := s.register("minji", "minji@example.com")

	s.NotEqual(uuid.Nil, user.UserID)
	s.Equal(model.DefaultAvatar, user.Avatar)
	s.Equal(model.DefaultThemeColors, []string(user.ThemeColors))
	s.NotEqual("password123", user.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	testCases := []struct {
		name     string
		req      *model.RegisterRequest
		wantCode string
	}{
		{
			name:     "Failure - ユーザー名が重複している",
			req:      &model.RegisterRequest{Username: "minji", Email: "other@example.com", DisplayName: "x", Password: "password123"},
			wantCode: "DUPLICATE_USERNAME",
		},
		{
			name:     "Failure - Emailが重複している",
			req:      &model.RegisterRequest{Username: "other", Email: "minji@example.com", DisplayName: "x", Password: "password123"},
			wantCode: "DUPLICATE_EMAIL",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			created, err := s.authService.Register(ctx, tc.req)
			s.Nil(created)
			s.ErrorIs(err, model.ErrConflict)
			var appErr *model.AppError
			s.Require().ErrorAs(err, &appErr)
			s.Equal(tc.wantCode, appErr.Detail.Code)
		})
	}
}

func (s *AuthServiceTestSuite) TestRegister_CustomProfile() {
	user, err := s.authService.Register(ctx, &model.RegisterRequest{
		Username:    "jisoo",
		Email:       "jisoo@example.com",
		DisplayName: "Jisoo",
		Password:    "password123",
		Avatar:      "Cat",
		ThemeColors: []string{"#000000"},
	})
	s.Require().NoError(err)
	s.Equal("Cat", user.Avatar)
	s.Equal([]string{"#000000"}, []string(user.ThemeColors))
}

func (s *AuthServiceTestSuite) TestLogin() {
	user := s.register("minji", "minji@example.com")

	s.Run("Success - トークンの sub はユーザー名", func() {
		resp, err := s.authService.Login(ctx, &model.LoginRequest{Username: "minji", Password: "password123"})
		s.Require().NoError(err)
		s.Equal(model.TokenTypeBearer, resp.TokenType)
		s.Equal(user.UserID, resp.User.UserID)

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWT.SecretKey), nil
		})
		s.Require().NoError(err)
		s.Equal("minji", claims.Subject)
		s.WithinDuration(time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	s.Run("Failure - パスワードが違う", func() {
		resp, err := s.authService.Login(ctx, &model.LoginRequest{Username: "minji", Password: "wrong-password"})
		s.Nil(resp)
		s.ErrorIs(err, model.ErrUnauthorized)
	})

	s.Run("Failure - ユーザーが存在しない", func() {
		resp, err := s.authService.Login(ctx, &model.LoginRequest{Username: "nobody", Password: "password123"})
		s.Nil(resp)
		s.ErrorIs(err, model.ErrUnauthorized)
	})
}

func (s *AuthServiceTestSuite) TestResolveUsernameAndGetUser() {
	user := s.register("minji", "minji@example.com")

	id, err := s.authService.ResolveUsername(ctx, "minji")
	s.Require().NoError(err)
	s.Equal(user.UserID, id)

	_, err = s.authService.ResolveUsername(ctx, "ghost")
	s.ErrorIs(err, model.ErrNotFound)

	got, err := s.authService.GetUser(ctx, user.UserID)
	s.Require().NoError(err)
	s.Equal("minji", got.Username)

	_, err = s.authService.GetUser(ctx, uuid.New())
	s.ErrorIs(err, model.ErrNotFound)
}

// DBエラーはモックで再現する
func TestAuthService_Login_RepositoryError(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	dbErr := errors.New("connection reset")
	mockUserRepo.On("FindByUsername", mock.Anything, mock.Anything, "minji").Return(nil, dbErr).Once()

	authService := service.NewAuthService(nil, mockUserRepo, &config.Config{})
	resp, err := authService.Login(ctx, &model.LoginRequest{Username: "minji", Password: "password123"})

	assert.Nil(t, resp)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	assert.ErrorIs(t, err, dbErr)
}
