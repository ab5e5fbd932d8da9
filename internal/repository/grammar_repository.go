//go:generate mockery --name GrammarRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"darae_api/internal/middleware"
	"darae_api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GrammarRepository interface {
	Create(ctx context.Context, tx *gorm.DB, rule *model.GrammarRule) error
	FindByID(ctx context.Context, db *gorm.DB, grammarID uuid.UUID) (*model.GrammarRule, error)
	FindVisibleByIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, grammarIDs []uuid.UUID) ([]*model.GrammarRule, error)
	FindVisible(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.GrammarRule, error)
	FindByOwner(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.GrammarRule, error)
	FindPublic(ctx context.Context, db *gorm.DB, params model.ListParams) ([]*model.GrammarRule, error)
	Update(ctx context.Context, tx *gorm.DB, userID, grammarID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, grammarID uuid.UUID) error
}

type gormGrammarRepository struct{}

func NewGormGrammarRepository() GrammarRepository {
	return &gormGrammarRepository{}
}

func (r *gormGrammarRepository) Create(ctx context.Context, tx *gorm.DB, rule *model.GrammarRule) error {
	if err := tx.WithContext(ctx).Create(rule).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating grammar rule in DB",
			"error", err,
			"user_id", rule.UserID.String(),
			"name", rule.Name,
		)
		return fmt.Errorf("gormGrammarRepository.Create: %w", err)
	}
	return nil
}

func (r *gormGrammarRepository) FindByID(ctx context.Context, db *gorm.DB, grammarID uuid.UUID) (*model.GrammarRule, error) {
	var rule model.GrammarRule
	result := db.WithContext(ctx).Where("grammar_id = ?", grammarID).First(&rule)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding grammar rule by ID in DB",
			"error", result.Error,
			"grammar_id", grammarID.String(),
		)
		return nil, fmt.Errorf("gormGrammarRepository.FindByID: %w", result.Error)
	}
	return &rule, nil
}

// FindVisibleByIDs は userID から見える文法ルールだけを返します。存在しないIDと他人の非公開IDは無視する。
func (r *gormGrammarRepository) FindVisibleByIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, grammarIDs []uuid.UUID) ([]*model.GrammarRule, error) {
	rules := []*model.GrammarRule{}
	if len(grammarIDs) == 0 {
		return rules, nil
	}
	if err := db.WithContext(ctx).Where("grammar_id IN ? AND (user_id = ? OR is_public = ?)", grammarIDs, userID, true).Find(&rules).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding grammar rules by IDs in DB", "error", err)
		return nil, fmt.Errorf("gormGrammarRepository.FindVisibleByIDs: %w", err)
	}
	return rules, nil
}

func (r *gormGrammarRepository) FindVisible(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.GrammarRule, error) {
	return r.list(ctx, db.WithContext(ctx).Where("(user_id = ? OR is_public = ?)", userID, true), params, "FindVisible")
}

func (r *gormGrammarRepository) FindByOwner(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.GrammarRule, error) {
	return r.list(ctx, db.WithContext(ctx).Where("user_id = ?", userID), params, "FindByOwner")
}

func (r *gormGrammarRepository) FindPublic(ctx context.Context, db *gorm.DB, params model.ListParams) ([]*model.GrammarRule, error) {
	return r.list(ctx, db.WithContext(ctx).Where("is_public = ?", true), params, "FindPublic")
}

func (r *gormGrammarRepository) list(ctx context.Context, query *gorm.DB, params model.ListParams, op string) ([]*model.GrammarRule, error) {
	rules := []*model.GrammarRule{}
	if err := applyListParams(query, params).Order("created_at ASC").Find(&rules).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing grammar rules in DB", "error", err, "operation", op)
		return nil, fmt.Errorf("gormGrammarRepository.%s: %w", op, err)
	}
	return rules, nil
}

func (r *gormGrammarRepository) Update(ctx context.Context, tx *gorm.DB, userID, grammarID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).
		Model(&model.GrammarRule{}).
		Where("user_id = ? AND grammar_id = ?", userID, grammarID).
		Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating grammar rule in DB",
			"error", result.Error,
			"grammar_id", grammarID.String(),
		)
		return fmt.Errorf("gormGrammarRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は文法ルールとノートとの関連を削除します
func (r *gormGrammarRepository) Delete(ctx context.Context, tx *gorm.DB, userID, grammarID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	db := tx.WithContext(ctx)

	var count int64
	if err := db.Model(&model.GrammarRule{}).
		Where("user_id = ? AND grammar_id = ?", userID, grammarID).
		Count(&count).Error; err != nil {
		logger.Error("Error checking grammar rule before delete", "error", err, "grammar_id", grammarID.String())
		return fmt.Errorf("gormGrammarRepository.Delete: %w", err)
	}
	if count == 0 {
		return model.ErrNotFound
	}

	if err := db.Exec("DELETE FROM "+model.NoteGrammarTable+" WHERE grammar_id = ?", grammarID).Error; err != nil {
		logger.Error("Error deleting note links of grammar rule", "error", err, "grammar_id", grammarID.String())
		return fmt.Errorf("gormGrammarRepository.Delete: %w", err)
	}

	result := db.Where("user_id = ? AND grammar_id = ?", userID, grammarID).Delete(&model.GrammarRule{})
	if result.Error != nil {
		logger.Error("Error deleting grammar rule in DB", "error", result.Error, "grammar_id", grammarID.String())
		return fmt.Errorf("gormGrammarRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
