//go:generate mockery --name VocabularyService --output ./mocks --outpkg mocks --case=underscore
// internal/service/vocabulary_service.go
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

type VocabularyService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req *model.VocabularyEntryRequest) (*model.VocabularyEntry, error)
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*model.VocabularyEntry, error)
	ListVisible(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.VocabularyEntry, error)
	ListOwn(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.VocabularyEntry, error)
	ListPublic(ctx context.Context, params model.ListParams) ([]*model.VocabularyEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, req *model.VocabularyEntryRequest) (*model.VocabularyEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
}

type vocabularyService struct {
	db        *gorm.DB // トランザクション用にDB接続を持つ
	vocabRepo repository.VocabularyRepository
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository) VocabularyService {
	return &vocabularyService{
		db:        db,
		vocabRepo: vocabRepo,
	}
}

func errEntryNotFound() error {
	return model.NewAppError("ENTRY_NOT_FOUND", "単語が見つかりません。", "", model.ErrNotFound)
}

// buildSenses はリクエストの順番を position として意味を組み立てます
func buildSenses(entryID uuid.UUID, reqs []model.SenseRequest) []model.Sense {
	senses := make([]model.Sense, 0, len(reqs))
	for i, sr := range reqs {
		senses = append(senses, model.Sense{
			SenseID:            uuid.New(),
			EntryID:            entryID,
			NativeTranslation:  sr.NativeTranslation,
			EnglishTranslation: sr.EnglishTranslation,
			Definition:         sr.Definition,
			Position:           i,
		})
	}
	return senses
}

// CreateEntry は単語と全ての意味を1トランザクションで作成します
func (s *vocabularyService) CreateEntry(ctx context.Context, userID uuid.UUID, req *model.VocabularyEntryRequest) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.VocabularyEntry

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entryID := uuid.New()
		entry := &model.VocabularyEntry{
			EntryID:      entryID,
			UserID:       userID,
			SurfaceForm:  req.SurfaceForm,
			Reading:      req.Reading,
			LanguageCode: req.LanguageCode,
			IsPublic:     req.Public(),
			Senses:       buildSenses(entryID, req.Senses),
		}
		if err := s.vocabRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		// Create 後の構造体には DB の既定値 true が書き戻されるため、リクエストの値で判定する
		if !req.Public() {
			if err := s.vocabRepo.Update(ctx, tx, userID, entryID, map[string]interface{}{"is_public": false}); err != nil {
				return err
			}
		}

		var err error
		created, err = s.vocabRepo.FindByID(ctx, tx, entryID)
		return err
	})
	if err != nil {
		logger.Error("Transaction failed for CreateEntry", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の作成に失敗しました。", "", err)
	}

	logger.Info("Vocabulary entry created", "entry_id", created.EntryID, "senses", len(created.Senses))
	return created, nil
}

// GetEntry は自分の単語か公開された単語を返します。それ以外は存在しないものとして扱う。
func (s *vocabularyService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*model.VocabularyEntry, error) {
	entry, err := s.vocabRepo.FindByID(ctx, s.db, entryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errEntryNotFound()
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	if entry.UserID != userID && !entry.IsPublic {
		return nil, errEntryNotFound()
	}
	return entry, nil
}

func (s *vocabularyService) ListVisible(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.VocabularyEntry, error) {
	return wrapList(s.vocabRepo.FindVisible(ctx, s.db, userID, params))
}

func (s *vocabularyService) ListOwn(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.VocabularyEntry, error) {
	return wrapList(s.vocabRepo.FindByOwner(ctx, s.db, userID, params))
}

func (s *vocabularyService) ListPublic(ctx context.Context, params model.ListParams) ([]*model.VocabularyEntry, error) {
	return wrapList(s.vocabRepo.FindPublic(ctx, s.db, params))
}

// UpdateEntry はスカラー項目を上書きし、意味を全件置き換えます
func (s *vocabularyService) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, req *model.VocabularyEntryRequest) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.VocabularyEntry

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"surface_form":  req.SurfaceForm,
			"reading":       req.Reading,
			"language_code": req.LanguageCode,
			"is_public":     req.Public(),
		}
		// 所有者でなければ ErrNotFound が返り、何も変更されない
		if err := s.vocabRepo.Update(ctx, tx, userID, entryID, updates); err != nil {
			return err
		}
		if err := s.vocabRepo.ReplaceSenses(ctx, tx, entryID, buildSenses(entryID, req.Senses)); err != nil {
			return err
		}

		var err error
		updated, err = s.vocabRepo.FindByID(ctx, tx, entryID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Vocabulary entry not found for update", "entry_id", entryID, "user_id", userID)
			return nil, errEntryNotFound()
		}
		logger.Error("Transaction failed for UpdateEntry", "error", err, "entry_id", entryID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の更新に失敗しました。", "", err)
	}
	return updated, nil
}

// DeleteEntry は単語と意味、ノートとの関連を削除します
func (s *vocabularyService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.vocabRepo.Delete(ctx, tx, userID, entryID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Vocabulary entry not found for delete", "entry_id", entryID, "user_id", userID)
			return errEntryNotFound()
		}
		logger.Error("Transaction failed for DeleteEntry", "error", err, "entry_id", entryID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", err)
	}
	logger.Info("Vocabulary entry deleted", "entry_id", entryID)
	return nil
}

// wrapList は一覧取得のエラーを 500 の AppError に揃えます
func wrapList[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "一覧の取得に失敗しました。", "", err)
	}
	return items, nil
}
