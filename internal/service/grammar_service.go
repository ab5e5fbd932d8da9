//go:generate mockery --name GrammarService --output ./mocks --outpkg mocks --case=underscore
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

type GrammarService interface {
	CreateRule(ctx context.Context, userID uuid.UUID, req *model.GrammarRuleRequest) (*model.GrammarRule, error)
	GetRule(ctx context.Context, userID, grammarID uuid.UUID) (*model.GrammarRule, error)
	ListVisible(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.GrammarRule, error)
	ListOwn(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.GrammarRule, error)
	ListPublic(ctx context.Context, params model.ListParams) ([]*model.GrammarRule, error)
	UpdateRule(ctx context.Context, userID, grammarID uuid.UUID, req *model.GrammarRuleRequest) (*model.GrammarRule, error)
	DeleteRule(ctx context.Context, userID, grammarID uuid.UUID) error
}

type grammarService struct {
	db          *gorm.DB
	grammarRepo repository.GrammarRepository
}

func NewGrammarService(db *gorm.DB, grammarRepo repository.GrammarRepository) GrammarService {
	return &grammarService{db: db, grammarRepo: grammarRepo}
}

func errGrammarNotFound() error {
	return model.NewAppError("GRAMMAR_NOT_FOUND", "文法ルールが見つかりません。", "", model.ErrNotFound)
}

func (s *grammarService) CreateRule(ctx context.Context, userID uuid.UUID, req *model.GrammarRuleRequest) (*model.GrammarRule, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.GrammarRule

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rule := &model.GrammarRule{
			GrammarID:    uuid.New(),
			UserID:       userID,
			Name:         req.Name,
			Structure:    req.Structure,
			Explanation:  req.Explanation,
			Examples:     req.ExampleList(),
			LanguageCode: req.LanguageCode,
			IsPublic:     req.Public(),
		}
		if err := s.grammarRepo.Create(ctx, tx, rule); err != nil {
			return err
		}
		if !req.Public() {
			if err := s.grammarRepo.Update(ctx, tx, userID, rule.GrammarID, map[string]interface{}{"is_public": false}); err != nil {
				return err
			}
		}
		var err error
		created, err = s.grammarRepo.FindByID(ctx, tx, rule.GrammarID)
		return err
	})
	if err != nil {
		logger.Error("Transaction failed for CreateRule", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文法ルールの作成に失敗しました。", "", err)
	}
	logger.Info("Grammar rule created", "grammar_id", created.GrammarID, "examples", len(created.Examples))
	return created, nil
}

func (s *grammarService) GetRule(ctx context.Context, userID, grammarID uuid.UUID) (*model.GrammarRule, error) {
	rule, err := s.grammarRepo.FindByID(ctx, s.db, grammarID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errGrammarNotFound()
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文法ルールの取得に失敗しました。", "", err)
	}
	if rule.UserID != userID && !rule.IsPublic {
		return nil, errGrammarNotFound()
	}
	return rule, nil
}

func (s *grammarService) ListVisible(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.GrammarRule, error) {
	return wrapList(s.grammarRepo.FindVisible(ctx, s.db, userID, params))
}

func (s *grammarService) ListOwn(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.GrammarRule, error) {
	return wrapList(s.grammarRepo.FindByOwner(ctx, s.db, userID, params))
}

func (s *grammarService) ListPublic(ctx context.Context, params model.ListParams) ([]*model.GrammarRule, error) {
	return wrapList(s.grammarRepo.FindPublic(ctx, s.db, params))
}

func (s *grammarService) UpdateRule(ctx context.Context, userID, grammarID uuid.UUID, req *model.GrammarRuleRequest) (*model.GrammarRule, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.GrammarRule

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":          req.Name,
			"structure":     req.Structure,
			"explanation":   req.Explanation,
			"examples":      req.ExampleList(),
			"language_code": req.LanguageCode,
			"is_public":     req.Public(),
		}
		if err := s.grammarRepo.Update(ctx, tx, userID, grammarID, updates); err != nil {
			return err
		}
		var err error
		updated, err = s.grammarRepo.FindByID(ctx, tx, grammarID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Grammar rule not found for update", "grammar_id", grammarID, "user_id", userID)
			return nil, errGrammarNotFound()
		}
		logger.Error("Transaction failed for UpdateRule", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文法ルールの更新に失敗しました。", "", err)
	}
	return updated, nil
}

func (s *grammarService) DeleteRule(ctx context.Context, userID, grammarID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.grammarRepo.Delete(ctx, tx, userID, grammarID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errGrammarNotFound()
		}
		logger.Error("Transaction failed for DeleteRule", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "文法ルールの削除に失敗しました。", "", err)
	}
	logger.Info("Grammar rule deleted", "grammar_id", grammarID)
	return nil
}
