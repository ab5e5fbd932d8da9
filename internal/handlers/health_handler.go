package handlers

import (
	"context"
	"net/http"
	"time"

	"darae_api/internal/model"
	"darae_api/internal/webutil"
)

// Pinger は *sql.DB が満たす
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	appName string
	version string
}

func NewHealthHandler(db Pinger, appName, version string) *HealthHandler {
	return &HealthHandler{db: db, appName: appName, version: version}
}

func (h *HealthHandler) status() model.HealthResponse {
	return model.HealthResponse{
		Status:  "online",
		Message: h.appName + " is running",
		Version: h.version,
	}
}

// Root は固定のステータスを返します
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, h.status(), handlerLogger(r, "Root"))
}

// Health はDBへの疎通も確認します
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "Health")

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			logger.Error("Database ping failed", "error", err)
			webutil.RespondWithJSON(w, http.StatusServiceUnavailable, model.HealthResponse{
				Status:  "degraded",
				Message: "database unreachable",
				Version: h.version,
			}, logger)
			return
		}
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.status(), logger)
}
