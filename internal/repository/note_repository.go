//go:generate mockery --name NoteRepository --output ./mocks --outpkg mocks --case=underscore
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

type NoteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, note *model.Note) error
	FindByID(ctx context.Context, db *gorm.DB, userID, noteID uuid.UUID) (*model.Note, error)
	FindByOwner(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Note, error)
	Update(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID) error
}

type gormNoteRepository struct{}

func NewGormNoteRepository() NoteRepository {
	return &gormNoteRepository{}
}

func withNoteRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Vocabulary.Senses", orderSensesByPosition).
		Preload("Grammar").
		Preload("Expressions")
}

// Create はノートと結合テーブルの行を保存します。関連先のレコード自体は書き換えない。
func (r *gormNoteRepository) Create(ctx context.Context, tx *gorm.DB, note *model.Note) error {
	result := tx.WithContext(ctx).
		Omit("Vocabulary.*", "Grammar.*", "Expressions.*").
		Create(note)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating note in DB",
			"error", result.Error,
			"user_id", note.UserID.String(),
			"title", note.Title,
		)
		return fmt.Errorf("gormNoteRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormNoteRepository) FindByID(ctx context.Context, db *gorm.DB, userID, noteID uuid.UUID) (*model.Note, error) {
	var note model.Note
	result := withNoteRelations(db.WithContext(ctx)).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		First(&note)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding note by ID in DB",
			"error", result.Error,
			"note_id", noteID.String(),
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByID: %w", result.Error)
	}
	return &note, nil
}

func (r *gormNoteRepository) FindByOwner(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Note, error) {
	notes := []*model.Note{}
	result := withNoteRelations(db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing notes in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByOwner: %w", result.Error)
	}
	return notes, nil
}

func (r *gormNoteRepository) Update(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).
		Model(&model.Note{}).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating note in DB",
			"error", result.Error,
			"note_id", noteID.String(),
		)
		return fmt.Errorf("gormNoteRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はノートと3つの結合テーブルの行を削除します
func (r *gormNoteRepository) Delete(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	db := tx.WithContext(ctx)

	var count int64
	if err := db.Model(&model.Note{}).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Count(&count).Error; err != nil {
		logger.Error("Error checking note before delete", "error", err, "note_id", noteID.String())
		return fmt.Errorf("gormNoteRepository.Delete: %w", err)
	}
	if count == 0 {
		return model.ErrNotFound
	}

	for _, table := range []string{model.NoteVocabularyTable, model.NoteGrammarTable, model.NoteExpressionsTable} {
		if err := db.Exec("DELETE FROM "+table+" WHERE note_id = ?", noteID).Error; err != nil {
			logger.Error("Error deleting note links", "error", err, "table", table, "note_id", noteID.String())
			return fmt.Errorf("gormNoteRepository.Delete: %w", err)
		}
	}

	result := db.Where("user_id = ? AND note_id = ?", userID, noteID).Delete(&model.Note{})
	if result.Error != nil {
		logger.Error("Error deleting note in DB", "error", result.Error, "note_id", noteID.String())
		return fmt.Errorf("gormNoteRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
