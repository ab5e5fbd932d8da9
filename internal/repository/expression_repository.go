//go:generate mockery --name ExpressionRepository --output ./mocks --outpkg mocks --case=underscore
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

type ExpressionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, expression *model.Expression) error
	FindByID(ctx context.Context, db *gorm.DB, expressionID uuid.UUID) (*model.Expression, error)
	FindVisibleByIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, expressionIDs []uuid.UUID) ([]*model.Expression, error)
	FindVisible(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.Expression, error)
	FindByOwner(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.Expression, error)
	FindPublic(ctx context.Context, db *gorm.DB, params model.ListParams) ([]*model.Expression, error)
	Update(ctx context.Context, tx *gorm.DB, userID, expressionID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, expressionID uuid.UUID) error
}

type gormExpressionRepository struct{}

func NewGormExpressionRepository() ExpressionRepository {
	return &gormExpressionRepository{}
}

func (r *gormExpressionRepository) Create(ctx context.Context, tx *gorm.DB, expression *model.Expression) error {
	if err := tx.WithContext(ctx).Create(expression).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating expression in DB",
			"error", err,
			"user_id", expression.UserID.String(),
			"text", expression.Text,
		)
		return fmt.Errorf("gormExpressionRepository.Create: %w", err)
	}
	return nil
}

func (r *gormExpressionRepository) FindByID(ctx context.Context, db *gorm.DB, expressionID uuid.UUID) (*model.Expression, error) {
	var expression model.Expression
	result := db.WithContext(ctx).Where("expression_id = ?", expressionID).First(&expression)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding expression by ID in DB",
			"error", result.Error,
			"expression_id", expressionID.String(),
		)
		return nil, fmt.Errorf("gormExpressionRepository.FindByID: %w", result.Error)
	}
	return &expression, nil
}

// FindVisibleByIDs は userID から見える表現だけを返します。存在しないIDと他人の非公開IDは無視する。
func (r *gormExpressionRepository) FindVisibleByIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, expressionIDs []uuid.UUID) ([]*model.Expression, error) {
	expressions := []*model.Expression{}
	if len(expressionIDs) == 0 {
		return expressions, nil
	}
	if err := db.WithContext(ctx).Where("expression_id IN ? AND (user_id = ? OR is_public = ?)", expressionIDs, userID, true).Find(&expressions).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding expressions by IDs in DB", "error", err)
		return nil, fmt.Errorf("gormExpressionRepository.FindVisibleByIDs: %w", err)
	}
	return expressions, nil
}

func (r *gormExpressionRepository) FindVisible(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.Expression, error) {
	return r.list(ctx, db.WithContext(ctx).Where("(user_id = ? OR is_public = ?)", userID, true), params, "FindVisible")
}

func (r *gormExpressionRepository) FindByOwner(ctx context.Context, db *gorm.DB, userID uuid.UUID, params model.ListParams) ([]*model.Expression, error) {
	return r.list(ctx, db.WithContext(ctx).Where("user_id = ?", userID), params, "FindByOwner")
}

func (r *gormExpressionRepository) FindPublic(ctx context.Context, db *gorm.DB, params model.ListParams) ([]*model.Expression, error) {
	return r.list(ctx, db.WithContext(ctx).Where("is_public = ?", true), params, "FindPublic")
}

func (r *gormExpressionRepository) list(ctx context.Context, query *gorm.DB, params model.ListParams, op string) ([]*model.Expression, error) {
	expressions := []*model.Expression{}
	if err := applyListParams(query, params).Order("created_at ASC").Find(&expressions).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing expressions in DB", "error", err, "operation", op)
		return nil, fmt.Errorf("gormExpressionRepository.%s: %w", op, err)
	}
	return expressions, nil
}

func (r *gormExpressionRepository) Update(ctx context.Context, tx *gorm.DB, userID, expressionID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).
		Model(&model.Expression{}).
		Where("user_id = ? AND expression_id = ?", userID, expressionID).
		Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating expression in DB",
			"error", result.Error,
			"expression_id", expressionID.String(),
		)
		return fmt.Errorf("gormExpressionRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は表現とノートとの関連を削除します
func (r *gormExpressionRepository) Delete(ctx context.Context, tx *gorm.DB, userID, expressionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	db := tx.WithContext(ctx)

	var count int64
	if err := db.Model(&model.Expression{}).
		Where("user_id = ? AND expression_id = ?", userID, expressionID).
		Count(&count).Error; err != nil {
		logger.Error("Error checking expression before delete", "error", err, "expression_id", expressionID.String())
		return fmt.Errorf("gormExpressionRepository.Delete: %w", err)
	}
	if count == 0 {
		return model.ErrNotFound
	}

	if err := db.Exec("DELETE FROM "+model.NoteExpressionsTable+" WHERE expression_id = ?", expressionID).Error; err != nil {
		logger.Error("Error deleting note links of expression", "error", err, "expression_id", expressionID.String())
		return fmt.Errorf("gormExpressionRepository.Delete: %w", err)
	}

	result := db.Where("user_id = ? AND expression_id = ?", userID, expressionID).Delete(&model.Expression{})
	if result.Error != nil {
		logger.Error("Error deleting expression in DB", "error", result.Error, "expression_id", expressionID.String())
		return fmt.Errorf("gormExpressionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
