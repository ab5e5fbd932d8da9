package service_test

import (
	"testing"

	"darae_api/internal/model"
	"darae_api/internal/repository"
	"darae_api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_expressionService(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewExpressionService(db, repository.NewGormExpressionRepository())
	owner, other := uuid.New(), uuid.New()

	expr, err := svc.CreateExpression(ctx, owner, &model.ExpressionRequest{
		Text:              "잘 먹겠습니다",
		NativeTranslation: "いただきます",
		UsageDescription:  ptr("食事の前に言う"),
		LanguageCode:      "ko",
	})
	require.NoError(t, err)
	assert.True(t, expr.IsPublic)
	require.NotNil(t, expr.UsageDescription)
	assert.Nil(t, expr.EnglishTranslation)

	private, err := svc.CreateExpression(ctx, owner, &model.ExpressionRequest{
		Text: "お疲れ様", NativeTranslation: "thanks", LanguageCode: "ja", IsPublic: ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, private.IsPublic)

	t.Run("非公開の表現は他人から見えない", func(t *testing.T) {
		var stored model.Expression
		require.NoError(t, db.Where("expression_id = ?", private.ExpressionID).First(&stored).Error)
		assert.False(t, stored.IsPublic)

		_, err := svc.GetExpression(ctx, other, private.ExpressionID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("一覧", func(t *testing.T) {
		public, err := svc.ListPublic(ctx, model.ListParams{Limit: 100})
		require.NoError(t, err)
		assert.Len(t, public, 1)

		visible, err := svc.ListVisible(ctx, other, model.ListParams{Limit: 100})
		require.NoError(t, err)
		assert.Len(t, visible, 1)

		ja, err := svc.ListOwn(ctx, owner, model.ListParams{LanguageCode: "ja", Limit: 100})
		require.NoError(t, err)
		require.Len(t, ja, 1)
		assert.Equal(t, "お疲れ様", ja[0].Text)
	})

	t.Run("所有者だけが更新できる", func(t *testing.T) {
		update := &model.ExpressionRequest{
			Text: "잘 먹었습니다", NativeTranslation: "ごちそうさま", LanguageCode: "ko",
		}
		_, err := svc.UpdateExpression(ctx, other, expr.ExpressionID, update)
		assert.ErrorIs(t, err, model.ErrNotFound)

		unchanged, err := svc.GetExpression(ctx, owner, expr.ExpressionID)
		require.NoError(t, err)
		assert.Equal(t, "잘 먹겠습니다", unchanged.Text)
		require.NotNil(t, unchanged.UsageDescription)

		updated, err := svc.UpdateExpression(ctx, owner, expr.ExpressionID, update)
		require.NoError(t, err)
		assert.Equal(t, "잘 먹었습니다", updated.Text)
		assert.Nil(t, updated.UsageDescription)
	})

	t.Run("所有者だけが削除できる", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteExpression(ctx, other, expr.ExpressionID), model.ErrNotFound)
		_, err := svc.GetExpression(ctx, owner, expr.ExpressionID)
		require.NoError(t, err, "他人の削除で消えない")

		require.NoError(t, svc.DeleteExpression(ctx, owner, expr.ExpressionID))
		_, err = svc.GetExpression(ctx, owner, expr.ExpressionID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
