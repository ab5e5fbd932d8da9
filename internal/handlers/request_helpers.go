package handlers

import (
	"log/slog"
	"net/http"

	"darae_api/internal/middleware"
	"darae_api/internal/model"
	"darae_api/internal/webutil"

	"github.com/google/uuid"
)

// requireUserID は認証済みユーザーのIDを取り出します。取れなければ 401 を書き込んで false を返す。
func requireUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return userID, true
}

// decodeAndValidate はJSONボディをデコードして検証します。失敗時は 400 を書き込んで false を返す。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}

// pathID はパスパラメータのUUIDを取り出します。不正な形式なら 400。
func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	id, err := webutil.URLParamUUID(r, name)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String("param", name), slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return id, true
}

func listParams(w http.ResponseWriter, r *http.Request, logger *slog.Logger, defaultLimit int) (model.ListParams, bool) {
	params, err := webutil.ParseListParams(r, defaultLimit)
	if err != nil {
		logger.Warn("Invalid list query", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return params, false
	}
	return params, true
}

// handlerLogger はリクエストスコープのロガーにハンドラ名を付けて返します
func handlerLogger(r *http.Request, name string) *slog.Logger {
	return middleware.GetLogger(r.Context()).With(slog.String("handler", name))
}
