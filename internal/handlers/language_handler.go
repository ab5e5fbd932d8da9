package handlers

import (
	"log/slog"
	"net/http"

	"darae_api/internal/model"
	"darae_api/internal/service"
	"darae_api/internal/webutil"
)

type LanguageHandler struct {
	service service.LanguageService
}

func NewLanguageHandler(s service.LanguageService) *LanguageHandler {
	return &LanguageHandler{service: s}
}

// ListLanguages は登録済みの言語一覧を返します (認証不要)
func (h *LanguageHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListLanguages")

	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if languages == nil {
		languages = []*model.Language{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, languages, logger)
}

func (h *LanguageHandler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateLanguage")

	if _, ok := requireUserID(w, r, logger); !ok {
		return
	}

	var req model.LanguageRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	language, err := h.service.CreateLanguage(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Language created successfully", slog.String("code", language.Code))
	webutil.RespondWithJSON(w, http.StatusCreated, language, logger)
}
