package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"darae_api/internal/model"
	"darae_api/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserResolver はトークンの subject (ユーザー名) を所有者IDに解決します
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) (uuid.UUID, error)
}

// unauthorized は失敗理由をクライアントに漏らさないよう、常に同じレスポンスを返す
func unauthorized(w http.ResponseWriter, r *http.Request) {
	appErr := model.NewAppError("UNAUTHORIZED", "認証情報が無効です。", "", model.ErrUnauthorized)
	w.Header().Set("WWW-Authenticate", "Bearer")
	webutil.HandleError(w, GetLogger(r.Context()), appErr)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
func JWTAuthMiddleware(secretKey string, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				unauthorized(w, r)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				unauthorized(w, r)
				return
			}

			// 署名と有効期限(exp)の両方を検証。exp のないトークンは受け付けない。
			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secretKey), nil
			}, jwt.WithExpirationRequired(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				unauthorized(w, r)
				return
			}

			username := claims.Subject
			if username == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing")
				unauthorized(w, r)
				return
			}

			userID, err := resolver.ResolveUsername(r.Context(), username)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					logger.Warn("JWT auth failed: user in token no longer exists", "username", username)
					unauthorized(w, r)
					return
				}
				logger.Error("JWT auth failed: could not resolve user", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID はコンテキストに所有者IDをセットします
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, model.UserIDKey, userID)
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		// 認証ミドルウェアを通っていないルートから呼ばれた
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
	}
	return value, nil
}
