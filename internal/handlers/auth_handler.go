package handlers

import (
	"errors"
	"net/http"
	"strings"

	"darae_api/internal/middleware"
	"darae_api/internal/model"
	"darae_api/internal/service"
	"darae_api/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register は新規ユーザーを登録します
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Error("Registration process failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Registration request successful", "user_id", user.UserID)
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewUserResponse(user), logger)
}

// Token はユーザー名とパスワードからアクセストークンを発行します。
// OAuth2 password flow と同じ form 形式に加えて JSON も受け付ける。
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if !decodeAndValidate(w, r, logger, &req) {
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			logger.Warn("Failed to parse token form", "error", err)
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
		if err := webutil.ValidateStruct(&req); err != nil {
			logger.Warn("Validation failed for token request", "error", err)
			webutil.HandleError(w, logger, err)
			return
		}
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Warn("Token request failed", "error", err)
		if errors.Is(err, model.ErrUnauthorized) {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetMe は認証済みユーザー自身のプロフィールを返します
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}
