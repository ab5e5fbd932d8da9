package handlers

import (
	"log/slog"
	"net/http"

	"darae_api/internal/model"
	"darae_api/internal/service"
	"darae_api/internal/webutil"
)

type ExpressionHandler struct {
	service      service.ExpressionService
	defaultLimit int
}

func NewExpressionHandler(s service.ExpressionService, defaultLimit int) *ExpressionHandler {
	if defaultLimit <= 0 {
		defaultLimit = model.DefaultListLimit
	}
	return &ExpressionHandler{service: s, defaultLimit: defaultLimit}
}

func (h *ExpressionHandler) CreateExpression(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "CreateExpression")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.ExpressionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	expression, err := h.service.CreateExpression(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating expression in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Expression created successfully", slog.String("expression_id", expression.ExpressionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, expression, logger)
}

func (h *ExpressionHandler) ListExpressions(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListExpressions")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}
	expressions, err := h.service.ListVisible(r.Context(), userID, params)
	respondExpressions(w, logger, expressions, err)
}

func (h *ExpressionHandler) ListMyExpressions(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListMyExpressions")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}
	expressions, err := h.service.ListOwn(r.Context(), userID, params)
	respondExpressions(w, logger, expressions, err)
}

func (h *ExpressionHandler) ListPublicExpressions(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "ListPublicExpressions")

	params, ok := listParams(w, r, logger, h.defaultLimit)
	if !ok {
		return
	}
	expressions, err := h.service.ListPublic(r.Context(), params)
	respondExpressions(w, logger, expressions, err)
}

func respondExpressions(w http.ResponseWriter, logger *slog.Logger, expressions []*model.Expression, err error) {
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if expressions == nil {
		expressions = []*model.Expression{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, expressions, logger)
}

func (h *ExpressionHandler) GetExpression(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetExpression")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	expressionID, ok := pathID(w, r, logger, "expression_id")
	if !ok {
		return
	}

	expression, err := h.service.GetExpression(r.Context(), userID, expressionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, expression, logger)
}

func (h *ExpressionHandler) UpdateExpression(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "UpdateExpression")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	expressionID, ok := pathID(w, r, logger, "expression_id")
	if !ok {
		return
	}

	var req model.ExpressionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	expression, err := h.service.UpdateExpression(r.Context(), userID, expressionID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, expression, logger)
}

func (h *ExpressionHandler) DeleteExpression(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteExpression")

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	expressionID, ok := pathID(w, r, logger, "expression_id")
	if !ok {
		return
	}

	if err := h.service.DeleteExpression(r.Context(), userID, expressionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
