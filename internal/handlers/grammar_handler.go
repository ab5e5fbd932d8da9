package handlers

import (
	"log/slog"
	"net/http"

	"darae_api/internal/model"
	"darae_api/internal/service"
	"darae_api/internal/webutil"
)

type GrammarHandler struct {
	service      service.GrammarService
	defaultLimit int
}

func NewGrammarHandler(s service.GrammarService, defaultLimit int) *GrammarHandler {
	if defaultLimit <= 0 {
		defaultLimit = model.DefaultListLimit
	}
	return &GrammarHandler{service: s, defaultLimit: defaultLimit}
}

func (h *GrammarHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateRule")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.GrammarRuleRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	rule, err := h.service.CreateRule(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating grammar rule in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Grammar rule created successfully", slog.String("grammar_id", rule.GrammarID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, rule, logger)
}

func (h *GrammarHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListRules")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}
	rules, err := h.service.ListVisible(r.Context(), userID, params)
	respondRules(w, logger, rules, err)
}

func (h *GrammarHandler) ListMyRules(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListMyRules")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}
	rules, err := h.service.ListOwn(r.Context(), userID, params)
	respondRules(w, logger, rules, err)
}

func (h *GrammarHandler) ListPublicRules(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListPublicRules")

	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}
	rules, err := h.service.ListPublic(r.Context(), params)
	respondRules(w, logger, rules, err)
}

func respondRules(w http.ResponseWriter, logger *slog.Logger, rules []*model.GrammarRule, err error) {
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if rules == nil {
		rules = []*model.GrammarRule{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, rules, logger)
}

func (h *GrammarHandler) GetRule(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetRule")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	grammarID, ok := pathID(w, r, logger, "grammar_id")
	if !ok {
		return
	}

	rule, err := h.service.GetRule(r.Context(), userID, grammarID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, rule, logger)
}

func (h *GrammarHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateRule")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	grammarID, ok := pathID(w, r, logger, "grammar_id")
	if !ok {
		return
	}

	var req model.GrammarRuleRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	rule, err := h.service.UpdateRule(r.Context(), userID, grammarID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, rule, logger)
}

func (h *GrammarHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteRule")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	grammarID, ok := pathID(w, r, logger, "grammar_id")
	if !ok {
		return
	}

	if err := h.service.DeleteRule(r.Context(), userID, grammarID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
