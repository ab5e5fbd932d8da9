//go:generate mockery --name LanguageService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"darae_api/internal/middleware"
	"darae_api/internal/model"
	"darae_api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LanguageService interface {
	CreateLanguage(ctx context.Context, req *model.LanguageRequest) (*model.Language, error)
	ListLanguages(ctx context.Context) ([]*model.Language, error)
}

type languageService struct {
	db           *gorm.DB
	languageRepo repository.LanguageRepository
}

func NewLanguageService(db *gorm.DB, languageRepo repository.LanguageRepository) LanguageService {
	return &languageService{db: db, languageRepo: languageRepo}
}

func (s *languageService) CreateLanguage(ctx context.Context, req *model.LanguageRequest) (*model.Language, error) {
	logger := middleware.GetLogger(ctx)
	language := &model.Language{
		LanguageID: uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		Code:       strings.TrimSpace(req.Code),
	}
	if err := s.languageRepo.Create(ctx, s.db, language); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DUPLICATE_LANGUAGE", "その言語は既に登録されています。", "name,code", model.ErrConflict)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "言語の登録に失敗しました。", "", err)
	}
	logger.Info("Language created", "code", language.Code)
	return language, nil
}

func (s *languageService) ListLanguages(ctx context.Context) ([]*model.Language, error) {
	languages, err := s.languageRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "言語一覧の取得に失敗しました。", "", err)
	}
	return languages, nil
}
