package handlers

import (
	"net/http"

	"darae_api/internal/model"
	"darae_api/internal/service"
	"darae_api/internal/webutil"
)

type DictionaryHandler struct {
	service service.DictionaryService
}

func NewDictionaryHandler(s service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{service: s}
}

// GetGlobalDictionary は母語訳ごとにまとめた全ユーザーの単語を返します (認証不要)
func (h *DictionaryHandler) GetGlobalDictionary(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetGlobalDictionary")

	groups, err := h.service.GetGlobalDictionary(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if groups == nil {
		groups = []model.GlobalDictionaryGroup{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, groups, logger)
}
