package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"degen_api/internal/api/middlew"
	"degen_api/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	const op = "handler.Health"
	log := middlew.GetLogger(r.Context())

	if err := h.db.Ping(r.Context()); err != nil {
		log.Error("база данных недоступна", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusServiceUnavailable, "service_unavailable", "Database is unavailable")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, map[string]string{"status": "ok"})
}
