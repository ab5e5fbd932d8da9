package service_test

import (
	"testing"

	"darae_api/internal/model"
	"darae_api/internal/repository"
	"darae_api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_languageService(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewLanguageService(db, repository.NewGormLanguageRepository())

	ko, err := svc.CreateLanguage(ctx, &model.LanguageRequest{Name: "Korean", Code: "ko"})
	require.NoError(t, err)
	assert.Equal(t, "ko", ko.Code)

	_, err = svc.CreateLanguage(ctx, &model.LanguageRequest{Name: " Japanese ", Code: "ja"})
	require.NoError(t, err)

	t.Run("コードが重複すると Conflict", func(t *testing.T) {
		_, err := svc.CreateLanguage(ctx, &model.LanguageRequest{Name: "Hangul", Code: "ko"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("一覧は名前順", func(t *testing.T) {
		languages, err := svc.ListLanguages(ctx)
		require.NoError(t, err)
		require.Len(t, languages, 2)
		assert.Equal(t, "Japanese", languages[0].Name)
		assert.Equal(t, "Korean", languages[1].Name)
	})
}
