// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"darae_api/internal/config"
	"darae_api/internal/handlers"
	"darae_api/internal/model"
	"darae_api/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{SecretKey: testSecret, AccessTokenTTL: time.Hour},
		App: config.AppConfig{Name: "Darae API", Version: "test", DefaultListLimit: 100},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		},
	}
}

// testServices はルーターに注入するサービスのモック一式
type testServices struct {
	auth       *mocks.AuthService
	language   *mocks.LanguageService
	vocabulary *mocks.VocabularyService
	expression *mocks.ExpressionService
	grammar    *mocks.GrammarService
	note       *mocks.NoteService
	dictionary *mocks.DictionaryService
}

func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()
	s := &testServices{
		auth:       mocks.NewAuthService(t),
		language:   mocks.NewLanguageService(t),
		vocabulary: mocks.NewVocabularyService(t),
		expression: mocks.NewExpressionService(t),
		grammar:    mocks.NewGrammarService(t),
		note:       mocks.NewNoteService(t),
		dictionary: mocks.NewDictionaryService(t),
	}
	router := handlers.NewRouter(handlers.RouterDeps{
		Config:     testConfig(),
		Logger:     testLogger,
		Resolver:   s.auth,
		Auth:       handlers.NewAuthHandler(s.auth),
		Language:   handlers.NewLanguageHandler(s.language),
		Vocabulary: handlers.NewVocabularyHandler(s.vocabulary, 100),
		Expression: handlers.NewExpressionHandler(s.expression, 100),
		Grammar:    handlers.NewGrammarHandler(s.grammar, 100),
		Note:       handlers.NewNoteHandler(s.note),
		Dictionary: handlers.NewDictionaryHandler(s.dictionary),
		Health:     handlers.NewHealthHandler(nil, "Darae API", "test"),
	})
	return router, s
}

// signToken はテスト用のアクセストークンを発行します
func signToken(t *testing.T, username string, ttl time.Duration) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// authenticate は username を userID に解決するモックを設定し、Authorization ヘッダー値を返します
func (s *testServices) authenticate(t *testing.T, username string, userID uuid.UUID) string {
	s.auth.On("ResolveUsername", mock.Anything, username).Return(userID, nil)
	return "Bearer " + signToken(t, username, time.Hour)
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewBuffer(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "error body: %s", rr.Body.String())
	return resp.Error
}
