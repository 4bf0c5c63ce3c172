package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/watchlist-server/internal/logger"
)

const healthTimeout = 2 * time.Second

// Pinger checks a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports whether the database is reachable.
type Health struct {
	db     Pinger
	logger *logger.Logger
}

func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: database ping failed", "error", err.Error())
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable"))
		return
	}

	_, _ = w.Write([]byte("ok"))
}
