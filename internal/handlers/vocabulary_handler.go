// internal/handlers/vocabulary_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"darae_api/internal/model"
	"darae_api/internal/service"
	"darae_api/internal/webutil"
)

type VocabularyHandler struct {
	service      service.VocabularyService
	defaultLimit int
}

func NewVocabularyHandler(s service.VocabularyService, defaultLimit int) *VocabularyHandler {
	if defaultLimit <= 0 {
		defaultLimit = model.DefaultListLimit
	}
	return &VocabularyHandler{service: s, defaultLimit: defaultLimit}
}

// CreateEntry は単語と意味を作成します
func (h *VocabularyHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateEntry")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.VocabularyEntryRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	entry, err := h.service.CreateEntry(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating vocabulary entry in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary entry created successfully", slog.String("entry_id", entry.EntryID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

// ListEntries は自分の単語と公開された単語を返します
func (h *VocabularyHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListEntries")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}

	entries, err := h.service.ListVisible(r.Context(), userID, params)
	h.respondList(w, logger, entries, err)
}

// ListMyEntries は自分の単語だけを返します
func (h *VocabularyHandler) ListMyEntries(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListMyEntries")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}

	entries, err := h.service.ListOwn(r.Context(), userID, params)
	h.respondList(w, logger, entries, err)
}

// ListPublicEntries は全ユーザーの公開単語を返します (認証不要)
func (h *VocabularyHandler) ListPublicEntries(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListPublicEntries")

	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}

	entries, err := h.service.ListPublic(r.Context(), params)
	h.respondList(w, logger, entries, err)
}

func (h *VocabularyHandler) respondList(w http.ResponseWriter, logger *slog.Logger, entries []*model.VocabularyEntry, err error) {
	if err != nil {
		logger.Error("Error listing vocabulary entries in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if entries == nil {
		entries = []*model.VocabularyEntry{}
	}
	logger.Debug("Vocabulary entries listed", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

func (h *VocabularyHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetEntry")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, logger, "entry_id")
	if !ok {
		return
	}

	entry, err := h.service.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// UpdateEntry は単語を上書きし、意味を全件置き換えます
func (h *VocabularyHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateEntry")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, logger, "entry_id")
	if !ok {
		return
	}

	var req model.VocabularyEntryRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	entry, err := h.service.UpdateEntry(r.Context(), userID, entryID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Vocabulary entry updated successfully", slog.String("entry_id", entryID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

func (h *VocabularyHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteEntry")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, logger, "entry_id")
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(r.Context(), userID, entryID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Vocabulary entry deleted successfully", slog.String("entry_id", entryID.String()))
	w.WriteHeader(http.StatusNoContent)
}
