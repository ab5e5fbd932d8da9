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

func Test_grammarService(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewGrammarService(db, repository.NewGormGrammarRepository())
	owner, other := uuid.New(), uuid.New()

	req := &model.GrammarRuleRequest{
		Name:         "主格助詞 -이/-가",
		Structure:    "N + 이/가",
		Explanation:  "主語を示す",
		Examples:     []string{"제가 학생이에요.", "비가 와요.", "날씨가 좋아요."},
		LanguageCode: "ko",
	}

	rule, err := svc.CreateRule(ctx, owner, req)
	require.NoError(t, err)

	t.Run("例文は順番通りに保存される", func(t *testing.T) {
		got, err := svc.GetRule(ctx, owner, rule.GrammarID)
		require.NoError(t, err)
		assert.Equal(t, []string{"제가 학생이에요.", "비가 와요.", "날씨가 좋아요."}, []string(got.Examples))
	})

	t.Run("例文なしは空リスト", func(t *testing.T) {
		r, err := svc.CreateRule(ctx, owner, &model.GrammarRuleRequest{
			Name: "n", Structure: "s", Explanation: "e", LanguageCode: "ko", IsPublic: ptr(false),
		})
		require.NoError(t, err)
		assert.NotNil(t, r.Examples)
		assert.Empty(t, r.Examples)
		assert.False(t, r.IsPublic)

		var stored model.GrammarRule
		require.NoError(t, db.Where("grammar_id = ?", r.GrammarID).First(&stored).Error)
		assert.False(t, stored.IsPublic)

		_, err = svc.GetRule(ctx, other, r.GrammarID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("他人は更新できない", func(t *testing.T) {
		_, err := svc.UpdateRule(ctx, other, rule.GrammarID, &model.GrammarRuleRequest{
			Name: "x", Structure: "x", Explanation: "x", LanguageCode: "ko",
		})
		assert.ErrorIs(t, err, model.ErrNotFound)

		got, err := svc.GetRule(ctx, owner, rule.GrammarID)
		require.NoError(t, err)
		assert.Equal(t, req.Name, got.Name)
	})

	t.Run("更新で例文も置き換わる", func(t *testing.T) {
		updated, err := svc.UpdateRule(ctx, owner, rule.GrammarID, &model.GrammarRuleRequest{
			Name: req.Name, Structure: req.Structure, Explanation: "更新", Examples: []string{"b", "a"}, LanguageCode: "ko",
		})
		require.NoError(t, err)
		assert.Equal(t, "更新", updated.Explanation)
		assert.Equal(t, []string{"b", "a"}, []string(updated.Examples))
	})

	t.Run("公開一覧", func(t *testing.T) {
		rules, err := svc.ListPublic(ctx, model.ListParams{Limit: 100})
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, rule.GrammarID, rules[0].GrammarID)

		own, err := svc.ListOwn(ctx, owner, model.ListParams{Limit: 100})
		require.NoError(t, err)
		assert.Len(t, own, 2)
	})

	t.Run("他人は削除できず、所有者は削除できる", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteRule(ctx, other, rule.GrammarID), model.ErrNotFound)
		kept, err := svc.GetRule(ctx, owner, rule.GrammarID)
		require.NoError(t, err, "他人の削除で消えない")
		assert.Equal(t, []string{"b", "a"}, []string(kept.Examples))

		require.NoError(t, svc.DeleteRule(ctx, owner, rule.GrammarID))
		_, err = svc.GetRule(ctx, owner, rule.GrammarID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
