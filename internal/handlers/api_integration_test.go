//go:build integration

// api_integration_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"darae_api/internal/handlers"
	"darae_api/internal/model"
	"darae_api/internal/repository"
	"darae_api/internal/service"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// startPostgres は使い捨ての PostgreSQL コンテナを起動し、マイグレーション済みの接続を返します
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not construct pool")
	pool.MaxWait = 120 * time.Second
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("Docker is not available: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=darae",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL resource")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dsn := fmt.Sprintf("postgres://user:secret@%s/darae?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var errRetry error
		db, errRetry = repository.NewDB(repository.DriverPostgres, dsn, logger)
		return errRetry
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newIntegrationRouter(t *testing.T, db *gorm.DB) http.Handler {
	t.Helper()
	cfg := testConfig()

	userRepo := repository.NewGormUserRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	expressionRepo := repository.NewGormExpressionRepository()
	grammarRepo := repository.NewGormGrammarRepository()
	noteRepo := repository.NewGormNoteRepository()

	authService := service.NewAuthService(db, userRepo, cfg)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	return handlers.NewRouter(handlers.RouterDeps{
		Config:     cfg,
		Logger:     testLogger,
		Resolver:   authService,
		Auth:       handlers.NewAuthHandler(authService),
		Language:   handlers.NewLanguageHandler(service.NewLanguageService(db, repository.NewGormLanguageRepository())),
		Vocabulary: handlers.NewVocabularyHandler(service.NewVocabularyService(db, vocabRepo), 100),
		Expression: handlers.NewExpressionHandler(service.NewExpressionService(db, expressionRepo), 100),
		Grammar:    handlers.NewGrammarHandler(service.NewGrammarService(db, grammarRepo), 100),
		Note:       handlers.NewNoteHandler(service.NewNoteService(db, noteRepo, vocabRepo, grammarRepo, expressionRepo)),
		Dictionary: handlers.NewDictionaryHandler(service.NewDictionaryService(db, vocabRepo)),
		Health:     handlers.NewHealthHandler(sqlDB, "Darae API", "test"),
	})
}

func registerAndLogin(t *testing.T, router http.Handler, username string) string {
	t.Helper()
	rr := doRequest(t, router, http.MethodPost, "/register", map[string]string{
		"username":     username,
		"email":        username + "@example.com",
		"display_name": username,
		"password":     "password123",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	form := url.Values{"username": {username}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	tokenRR := httptest.NewRecorder()
	router.ServeHTTP(tokenRR, req)
	require.Equal(t, http.StatusOK, tokenRR.Code, tokenRR.Body.String())

	var token model.TokenResponse
	require.NoError(t, json.Unmarshal(tokenRR.Body.Bytes(), &token))
	return "Bearer " + token.AccessToken
}

func TestAPI_Integration_VocabularyToDictionary(t *testing.T) {
	db := startPostgres(t)
	router := newIntegrationRouter(t, db)

	minji := registerAndLogin(t, router, "minji")
	yuki := registerAndLogin(t, router, "yuki")

	// 同じユーザー名での再登録は 409
	rr := doRequest(t, router, http.MethodPost, "/register", map[string]string{
		"username": "minji", "email": "other@example.com", "display_name": "x", "password": "password123",
	}, "")
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "DUPLICATE_USERNAME", decodeError(t, rr).Code)

	create := func(auth, surface, lang, native string, public bool) model.VocabularyEntry {
		rr := doRequest(t, router, http.MethodPost, "/vocabulary/", map[string]interface{}{
			"surface_form":  surface,
			"language_code": lang,
			"is_public":     public,
			"senses":        []map[string]string{{"native_translation": native}},
		}, auth)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		var entry model.VocabularyEntry
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
		return entry
	}

	hakSaeng := create(minji, "학생", "ko", "学生", true)
	student := create(yuki, "student", "en", "学生", true)
	secret := create(minji, "비밀", "ko", "秘密", false)
	assert.False(t, secret.IsPublic)

	// 非公開の単語は他人から見えない
	rr = doRequest(t, router, http.MethodGet, "/vocabulary/"+secret.EntryID.String(), nil, yuki)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/vocabulary/public?language_code=ko", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var public []model.VocabularyEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &public))
	require.Len(t, public, 1)
	assert.Equal(t, hakSaeng.EntryID, public[0].EntryID)

	rr = doRequest(t, router, http.MethodGet, "/dictionary/global", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var groups []model.GlobalDictionaryGroup
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "学生", groups[0].NativeTranslation)
	require.Len(t, groups[0].RelatedEntries, 2)
	assert.Equal(t, hakSaeng.EntryID, groups[0].RelatedEntries[0].EntryID)
	assert.Equal(t, student.EntryID, groups[0].RelatedEntries[1].EntryID)

	// ノートに関連付けた単語を削除すると関連も消える
	rr = doRequest(t, router, http.MethodPost, "/notes/", map[string]interface{}{
		"title":     "Day 1",
		"content":   "학생 = 学生",
		"vocab_ids": []string{hakSaeng.EntryID.String(), student.EntryID.String()},
	}, minji)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var note model.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &note))
	assert.Len(t, note.Vocabulary, 2)

	rr = doRequest(t, router, http.MethodDelete, "/vocabulary/"+hakSaeng.EntryID.String(), nil, minji)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/notes/"+note.NoteID.String(), nil, minji)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &note))
	require.Len(t, note.Vocabulary, 1)
	assert.Equal(t, student.EntryID, note.Vocabulary[0].EntryID)

	rr = doRequest(t, router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
