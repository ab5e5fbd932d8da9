//go:generate mockery --name NoteService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"darae_api/internal/middleware"
	"darae_api/internal/model"
	"darae_api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteService interface {
	CreateNote(ctx context.Context, userID uuid.UUID, req *model.NoteRequest) (*model.Note, error)
	GetNote(ctx context.Context, userID, noteID uuid.UUID) (*model.Note, error)
	ListNotes(ctx context.Context, userID uuid.UUID) ([]*model.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *model.NoteUpdateRequest) (*model.Note, error)
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error
}

type noteService struct {
	db             *gorm.DB
	noteRepo       repository.NoteRepository
	vocabRepo      repository.VocabularyRepository
	grammarRepo    repository.GrammarRepository
	expressionRepo repository.ExpressionRepository
}

func NewNoteService(
	db *gorm.DB,
	noteRepo repository.NoteRepository,
	vocabRepo repository.VocabularyRepository,
	grammarRepo repository.GrammarRepository,
	expressionRepo repository.ExpressionRepository,
) NoteService {
	return &noteService{
		db:             db,
		noteRepo:       noteRepo,
		vocabRepo:      vocabRepo,
		grammarRepo:    grammarRepo,
		expressionRepo: expressionRepo,
	}
}

func errNoteNotFound() error {
	return model.NewAppError("NOTE_NOT_FOUND", "ノートが見つかりません。", "", model.ErrNotFound)
}

// CreateNote はノートを作成し、自分から見えるIDだけを関連付けます。存在しないIDと他人の非公開IDは黙って捨てる。
func (s *noteService) CreateNote(ctx context.Context, userID uuid.UUID, req *model.NoteRequest) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.Note

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entries, err := s.vocabRepo.FindVisibleByIDs(ctx, tx, userID, req.VocabIDs)
		if err != nil {
			return err
		}
		rules, err := s.grammarRepo.FindVisibleByIDs(ctx, tx, userID, req.GrammarIDs)
		if err != nil {
			return err
		}
		expressions, err := s.expressionRepo.FindVisibleByIDs(ctx, tx, userID, req.ExpressionIDs)
		if err != nil {
			return err
		}

		note := &model.Note{
			NoteID:      uuid.New(),
			UserID:      userID,
			Title:       req.Title,
			Content:     req.Content,
			Topic:       model.TopicOrDefault(req.Topic),
			Vocabulary:  derefAll(entries),
			Grammar:     derefAll(rules),
			Expressions: derefAll(expressions),
		}
		if err := s.noteRepo.Create(ctx, tx, note); err != nil {
			return err
		}

		dropped := len(req.VocabIDs) + len(req.GrammarIDs) + len(req.ExpressionIDs) -
			len(entries) - len(rules) - len(expressions)
		if dropped > 0 {
			logger.Debug("Unknown or invisible ids ignored on note create", "note_id", note.NoteID, "dropped", dropped)
		}

		created, err = s.noteRepo.FindByID(ctx, tx, userID, note.NoteID)
		return err
	})
	if err != nil {
		logger.Error("Transaction failed for CreateNote", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ノートの作成に失敗しました。", "", err)
	}

	logger.Info("Note created",
		"note_id", created.NoteID,
		"vocabulary", len(created.Vocabulary),
		"grammar", len(created.Grammar),
		"expressions", len(created.Expressions),
	)
	return created, nil
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID uuid.UUID) (*model.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, s.db, userID, noteID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errNoteNotFound()
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ノートの取得に失敗しました。", "", err)
	}
	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, userID uuid.UUID) ([]*model.Note, error) {
	return wrapList(s.noteRepo.FindByOwner(ctx, s.db, userID))
}

// UpdateNote はタイトル・本文・トピックだけを更新します。関連は変更しない。
func (s *noteService) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *model.NoteUpdateRequest) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Note

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":   req.Title,
			"content": req.Content,
			"topic":   model.TopicOrDefault(req.Topic),
		}
		if err := s.noteRepo.Update(ctx, tx, userID, noteID, updates); err != nil {
			return err
		}
		var err error
		updated, err = s.noteRepo.FindByID(ctx, tx, userID, noteID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errNoteNotFound()
		}
		logger.Error("Transaction failed for UpdateNote", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ノートの更新に失敗しました。", "", err)
	}
	return updated, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.noteRepo.Delete(ctx, tx, userID, noteID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errNoteNotFound()
		}
		logger.Error("Transaction failed for DeleteNote", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ノートの削除に失敗しました。", "", err)
	}
	logger.Info("Note deleted", "note_id", noteID)
	return nil
}

func derefAll[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}
