//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
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

type VocabularyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error
	FindByID(ctx context.Context, db *gorm.DB, entryID uuid.UUID) (*model.VocabularyEntry, error)
	FindVisibleByIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, entryIDs []uuid.UUID) ([]*model.VocabularyEntry, error)
	FindAllWithSenses(ctx context.Context, db *gorm.DB) ([]*model.VocabularyEntry, error)
	FindVisible(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.VocabularyEntry, error)
	FindByOwner(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.VocabularyEntry, error)
	FindPublic(ctx context.Context, db *gorm.DB, params model.ListParams) ([]*model.VocabularyEntry, error)
	Update(ctx context.Context, tx *gorm.DB, userID, entryID uuid.UUID, updates map[string]interface{}) error
	ReplaceSenses(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, senses []model.Sense) error
	Delete(ctx context.Context, tx *gorm.DB, userID, entryID uuid.UUID) error
	FindAllSenses(ctx context.Context, db *gorm.DB) ([]model.Sense, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

// 意味は登録順 (position) で返す
func orderSensesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create は単語と意味をまとめて保存します
func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Error("Error creating vocabulary entry in DB",
			"error", err,
			"user_id", entry.UserID.String(),
			"surface_form", entry.SurfaceForm,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", err)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, entryID uuid.UUID) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.VocabularyEntry
	result := db.WithContext(ctx).
		Preload("Senses", orderSensesByPosition).
		Where("entry_id = ?", entryID).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary entry by ID in DB",
			"error", result.Error,
			"entry_id", entryID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

// FindVisibleByIDs は userID から見える単語だけを返します。存在しないIDと他人の非公開IDは無視する。
func (r *gormVocabularyRepository) FindVisibleByIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, entryIDs []uuid.UUID) ([]*model.VocabularyEntry, error) {
	entries := []*model.VocabularyEntry{}
	if len(entryIDs) == 0 {
		return entries, nil
	}
	result := db.WithContext(ctx).
		Preload("Senses", orderSensesByPosition).
		Where("entry_id IN ? AND (user_id = ? OR is_public = ?)", entryIDs, userID, true).
		Find(&entries)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding vocabulary entries by IDs in DB",
			"error", result.Error,
			"count", len(entryIDs),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindVisibleByIDs: %w", result.Error)
	}
	return entries, nil
}

// FindVisible は自分の単語と公開された単語を返します
func (r *gormVocabularyRepository) FindVisible(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.VocabularyEntry, error) {
	query := db.WithContext(ctx).Where("(user_id = ? OR is_public = ?)", userID, true)
	return r.list(ctx, query, params, "FindVisible")
}

func (r *gormVocabularyRepository) FindByOwner(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.VocabularyEntry, error) {
	query := db.WithContext(ctx).Where("user_id = ?", userID)
	return r.list(ctx, query, params, "FindByOwner")
}

func (r *gormVocabularyRepository) FindPublic(ctx context.Context, db *gorm.DB, params model.ListParams) ([]*model.VocabularyEntry, error) {
	query := db.WithContext(ctx).Where("is_public = ?", true)
	return r.list(ctx, query, params, "FindPublic")
}

func (r *gormVocabularyRepository) list(ctx context.Context, query *gorm.DB, params model.ListParams, op string) ([]*model.VocabularyEntry, error) {
	entries := []*model.VocabularyEntry{}
	result := applyListParams(query, params).
		Preload("Senses", orderSensesByPosition).
		Order("created_at ASC").
		Find(&entries)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing vocabulary entries in DB",
			"error", result.Error,
			"operation", op,
		)
		return nil, fmt.Errorf("gormVocabularyRepository.%s: %w", op, result.Error)
	}
	return entries, nil
}

// Update は所有者の単語のスカラー項目だけを更新します
func (r *gormVocabularyRepository) Update(ctx context.Context, tx *gorm.DB, userID, entryID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND entry_id = ?", userID, entryID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating vocabulary entry in DB",
			"error", result.Error,
			"entry_id", entryID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ReplaceSenses は既存の意味を全て削除して新しい意味で置き換えます
func (r *gormVocabularyRepository) ReplaceSenses(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, senses []model.Sense) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("entry_id = ?", entryID).Delete(&model.Sense{}).Error; err != nil {
		logger.Error("Error deleting senses in DB", "error", err, "entry_id", entryID.String())
		return fmt.Errorf("gormVocabularyRepository.ReplaceSenses: %w", err)
	}
	if len(senses) == 0 {
		return nil
	}
	for i := range senses {
		senses[i].EntryID = entryID
	}
	if err := tx.WithContext(ctx).Create(&senses).Error; err != nil {
		logger.Error("Error creating senses in DB", "error", err, "entry_id", entryID.String())
		return fmt.Errorf("gormVocabularyRepository.ReplaceSenses: %w", err)
	}
	return nil
}

// Delete は単語と、その意味・ノートとの関連をまとめて削除します
func (r *gormVocabularyRepository) Delete(ctx context.Context, tx *gorm.DB, userID, entryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	db := tx.WithContext(ctx)

	var count int64
	if err := db.Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND entry_id = ?", userID, entryID).
		Count(&count).Error; err != nil {
		logger.Error("Error checking vocabulary entry before delete", "error", err, "entry_id", entryID.String())
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", err)
	}
	if count == 0 {
		return model.ErrNotFound
	}

	if err := db.Exec("DELETE FROM "+model.NoteVocabularyTable+" WHERE entry_id = ?", entryID).Error; err != nil {
		logger.Error("Error deleting note links of vocabulary entry", "error", err, "entry_id", entryID.String())
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", err)
	}
	if err := db.Where("entry_id = ?", entryID).Delete(&model.Sense{}).Error; err != nil {
		logger.Error("Error deleting senses of vocabulary entry", "error", err, "entry_id", entryID.String())
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", err)
	}

	result := db.Where("user_id = ? AND entry_id = ?", userID, entryID).Delete(&model.VocabularyEntry{})
	if result.Error != nil {
		logger.Error("Error deleting vocabulary entry in DB", "error", result.Error, "entry_id", entryID.String())
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// FindAllWithSenses は意味を1つ以上持つ全ユーザーの単語を返します (グローバル辞書用)。
// 意味は読み込まないので、呼び出し側で FindAllSenses の結果を割り当てる。
func (r *gormVocabularyRepository) FindAllWithSenses(ctx context.Context, db *gorm.DB) ([]*model.VocabularyEntry, error) {
	entries := []*model.VocabularyEntry{}
	result := db.WithContext(ctx).
		Where("entry_id IN (?)", db.Model(&model.Sense{}).Select("entry_id")).
		Find(&entries)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing vocabulary entries with senses in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVocabularyRepository.FindAllWithSenses: %w", result.Error)
	}
	return entries, nil
}

// FindAllSenses は全ユーザーの意味を作成順で返します (グローバル辞書用)
func (r *gormVocabularyRepository) FindAllSenses(ctx context.Context, db *gorm.DB) ([]model.Sense, error) {
	senses := []model.Sense{}
	result := db.WithContext(ctx).
		Order("created_at ASC").
		Order("position ASC").
		Find(&senses)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing senses in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVocabularyRepository.FindAllSenses: %w", result.Error)
	}
	return senses, nil
}
