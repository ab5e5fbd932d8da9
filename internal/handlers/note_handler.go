package handlers

import (
	"log/slog"
	"net/http"

	"darae_api/internal/model"
	"darae_api/internal/service"
	"darae_api/internal/webutil"
)

type NoteHandler struct {
	service service.NoteService
}

func NewNoteHandler(s service.NoteService) *NoteHandler {
	return &NoteHandler{service: s}
}

// CreateNote はノートを作成し、指定された単語・文法・表現を関連付けます
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateNote")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.NoteRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	note, err := h.service.CreateNote(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Note created successfully", slog.String("note_id", note.NoteID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, note, logger)
}

func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListNotes")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	notes, err := h.service.ListNotes(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, notes, logger)
}

func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetNote")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	noteID, ok := pathID(w, r, logger, "note_id")
	if !ok {
		return
	}

	note, err := h.service.GetNote(r.Context(), userID, noteID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, note, logger)
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateNote")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	noteID, ok := pathID(w, r, logger, "note_id")
	if !ok {
		return
	}

	var req model.NoteUpdateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	note, err := h.service.UpdateNote(r.Context(), userID, noteID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, note, logger)
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteNote")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	noteID, ok := pathID(w, r, logger, "note_id")
	if !ok {
		return
	}

	if err := h.service.DeleteNote(r.Context(), userID, noteID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
