package repository

import (
	"context"
	"fmt"

	"darae_api/internal/middleware"
	"darae_api/internal/model"

	"gorm.io/gorm"
)

type LanguageRepository interface {
	Create(ctx context.Context, db *gorm.DB, language *model.Language) error
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Language, error)
}

type gormLanguageRepository struct{}

func NewGormLanguageRepository() LanguageRepository {
	return &gormLanguageRepository{}
}

func (r *gormLanguageRepository) Create(ctx context.Context, db *gorm.DB, language *model.Language) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(language).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Warn("Duplicate language", "name", language.Name, "code", language.Code)
			return model.ErrConflict
		}
		logger.Error("Error creating language in DB", "error", err, "code", language.Code)
		return fmt.Errorf("gormLanguageRepository.Create: %w", err)
	}
	return nil
}

func (r *gormLanguageRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Language, error) {
	var languages []*model.Language
	if err := db.WithContext(ctx).Order("name ASC").Find(&languages).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing languages in DB", "error", err)
		return nil, fmt.Errorf("gormLanguageRepository.FindAll: %w", err)
	}
	return languages, nil
}
