package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"darae_api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	validBody := map[string]interface{}{
		"username":     "minji",
		"email":        "minji@example.com",
		"display_name": "Minji",
		"password":     "password123",
	}

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(s *testServices)
		wantStatus int
		wantCode   string
	}{
		{
			name: "正常系: 201 とユーザー情報を返す",
			body: validBody,
			setupMock: func(s *testServices) {
				s.auth.On("Register", mock.Anything, mock.MatchedBy(func(req *model.RegisterRequest) bool {
					return req.Username == "minji" && req.Password == "password123"
				})).Return(&model.User{
					UserID: uuid.New(), Username: "minji", Email: "minji@example.com",
					DisplayName: "Minji", PasswordHash: "hash", Avatar: model.DefaultAvatar,
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "異常系: パスワードが短い",
			body:       map[string]interface{}{"username": "minji", "email": "minji@example.com", "display_name": "Minji", "password": "short"},
			setupMock:  func(s *testServices) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "異常系: 不正なJSON",
			body:       `{"username":`,
			setupMock:  func(s *testServices) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: ユーザー名の重複は 409",
			body: validBody,
			setupMock: func(s *testServices) {
				s.auth.On("Register", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("DUPLICATE_USERNAME", "dup", "username", model.ErrConflict)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_USERNAME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, s := newTestRouter(t)
			tt.setupMock(s)

			rr := doRequest(t, router, http.MethodPost, "/register", tt.body, "")
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
				return
			}
			assert.NotContains(t, rr.Body.String(), "password", "パスワードハッシュは返さない")
			var resp model.UserResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "minji", resp.Username)
		})
	}
}

func TestAuthHandler_Token(t *testing.T) {
	userID := uuid.New()
	tokenResp := &model.TokenResponse{
		AccessToken: "signed",
		TokenType:   model.TokenTypeBearer,
		User:        &model.UserResponse{UserID: userID, Username: "minji"},
	}

	t.Run("正常系: form 形式", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.auth.On("Login", mock.Anything, &model.LoginRequest{Username: "minji", Password: "password123"}).
			Return(tokenResp, nil).Once()

		form := url.Values{"username": {"minji"}, "password": {"password123"}}
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp model.TokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "signed", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, userID, resp.User.UserID)
	})

	t.Run("正常系: JSON 形式", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.auth.On("Login", mock.Anything, &model.LoginRequest{Username: "minji", Password: "password123"}).
			Return(tokenResp, nil).Once()

		rr := doRequest(t, router, http.MethodPost, "/token", map[string]string{"username": "minji", "password": "password123"}, "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 認証失敗は 401", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.auth.On("Login", mock.Anything, mock.Anything).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "ng", "", model.ErrUnauthorized)).Once()

		rr := doRequest(t, router, http.MethodPost, "/token", map[string]string{"username": "minji", "password": "wrong"}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "AUTHENTICATION_FAILED", decodeError(t, rr).Code)
	})

	t.Run("異常系: パスワードなし", func(t *testing.T) {
		router, _ := newTestRouter(t)
		form := url.Values{"username": {"minji"}}
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_GetMe(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		router, s := newTestRouter(t)
		auth := s.authenticate(t, "minji", userID)
		s.auth.On("GetUser", mock.Anything, userID).
			Return(&model.User{UserID: userID, Username: "minji"}, nil).Once()

		rr := doRequest(t, router, http.MethodGet, "/users/me", nil, auth)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp model.UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.UserID)
		assert.Equal(t, []string{}, resp.ThemeColors)
	})

	authFailures := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{"ヘッダーなし", func(t *testing.T) string { return "" }},
		{"Bearer 以外", func(t *testing.T) string { return "Basic abc" }},
		{"署名が不正", func(t *testing.T) string { return "Bearer " + signToken(t, "minji", time.Hour) + "x" }},
		{"期限切れ", func(t *testing.T) string { return "Bearer " + signToken(t, "minji", -time.Minute) }},
	}
	for _, tc := range authFailures {
		t.Run("異常系: "+tc.name, func(t *testing.T) {
			router, _ := newTestRouter(t)
			rr := doRequest(t, router, http.MethodGet, "/users/me", nil, tc.header(t))
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "UNAUTHORIZED", decodeError(t, rr).Code)
		})
	}

	t.Run("異常系: トークンのユーザーが存在しない", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.auth.On("ResolveUsername", mock.Anything, "ghost").Return(uuid.Nil, model.ErrNotFound).Once()

		rr := doRequest(t, router, http.MethodGet, "/users/me", nil, "Bearer "+signToken(t, "ghost", time.Hour))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
