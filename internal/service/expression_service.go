//go:generate mockery --name ExpressionService --output ./mocks --outpkg mocks --case=underscore
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

type ExpressionService interface {
	CreateExpression(ctx context.Context, userID uuid.UUID, req *model.ExpressionRequest) (*model.Expression, error)
	GetExpression(ctx context.Context, userID, expressionID uuid.UUID) (*model.Expression, error)
	ListVisible(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.Expression, error)
	ListOwn(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.Expression, error)
	ListPublic(ctx context.Context, params model.ListParams) ([]*model.Expression, error)
	UpdateExpression(ctx context.Context, userID, expressionID uuid.UUID, req *model.ExpressionRequest) (*model.Expression, error)
	DeleteExpression(ctx context.Context, userID, expressionID uuid.UUID) error
}

type expressionService struct {
	db             *gorm.DB
	expressionRepo repository.ExpressionRepository
}

func NewExpressionService(db *gorm.DB, expressionRepo repository.ExpressionRepository) ExpressionService {
	return &expressionService{db: db, expressionRepo: expressionRepo}
}

func errExpressionNotFound() error {
	return model.NewAppError("EXPRESSION_NOT_FOUND", "表現が見つかりません。", "", model.ErrNotFound)
}

func (s *expressionService) CreateExpression(ctx context.Context, userID uuid.UUID, req *model.ExpressionRequest) (*model.Expression, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.Expression

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expression := &model.Expression{
			ExpressionID:       uuid.New(),
			UserID:             userID,
			Text:               req.Text,
			NativeTranslation:  req.NativeTranslation,
			EnglishTranslation: req.EnglishTranslation,
			UsageDescription:   req.UsageDescription,
			LanguageCode:       req.LanguageCode,
			IsPublic:           req.Public(),
		}
		if err := s.expressionRepo.Create(ctx, tx, expression); err != nil {
			return err
		}
		// default:true のカラムは false を INSERT で送れないため後から更新する
		if !req.Public() {
			if err := s.expressionRepo.Update(ctx, tx, userID, expression.ExpressionID, map[string]interface{}{"is_public": false}); err != nil {
				return err
			}
		}
		var err error
		created, err = s.expressionRepo.FindByID(ctx, tx, expression.ExpressionID)
		return err
	})
	if err != nil {
		logger.Error("Transaction failed for CreateExpression", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "表現の作成に失敗しました。", "", err)
	}
	logger.Info("Expression created", "expression_id", created.ExpressionID)
	return created, nil
}

func (s *expressionService) GetExpression(ctx context.Context, userID, expressionID uuid.UUID) (*model.Expression, error) {
	expression, err := s.expressionRepo.FindByID(ctx, s.db, expressionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errExpressionNotFound()
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "表現の取得に失敗しました。", "", err)
	}
	if expression.UserID != userID && !expression.IsPublic {
		return nil, errExpressionNotFound()
	}
	return expression, nil
}

func (s *expressionService) ListVisible(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.Expression, error) {
	return wrapList(s.expressionRepo.FindVisible(ctx, s.db, userID, params))
}

func (s *expressionService) ListOwn(ctx context.Context, userID uuid.UUID, params model.ListParams) ([]*model.Expression, error) {
	return wrapList(s.expressionRepo.FindByOwner(ctx, s.db, userID, params))
}

func (s *expressionService) ListPublic(ctx context.Context, params model.ListParams) ([]*model.Expression, error) {
	return wrapList(s.expressionRepo.FindPublic(ctx, s.db, params))
}

func (s *expressionService) UpdateExpression(ctx context.Context, userID, expressionID uuid.UUID, req *model.ExpressionRequest) (*model.Expression, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Expression

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"text":                req.Text,
			"native_translation":  req.NativeTranslation,
			"english_translation": req.EnglishTranslation,
			"usage_description":   req.UsageDescription,
			"language_code":       req.LanguageCode,
			"is_public":           req.Public(),
		}
		if err := s.expressionRepo.Update(ctx, tx, userID, expressionID, updates); err != nil {
			return err
		}
		var err error
		updated, err = s.expressionRepo.FindByID(ctx, tx, expressionID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Expression not found for update", "expression_id", expressionID, "user_id", userID)
			return nil, errExpressionNotFound()
		}
		logger.Error("Transaction failed for UpdateExpression", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "表現の更新に失敗しました。", "", err)
	}
	return updated, nil
}

func (s *expressionService) DeleteExpression(ctx context.Context, userID, expressionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.expressionRepo.Delete(ctx, tx, userID, expressionID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errExpressionNotFound()
		}
		logger.Error("Transaction failed for DeleteExpression", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "表現の削除に失敗しました。", "", err)
	}
	logger.Info("Expression deleted", "expression_id", expressionID)
	return nil
}
