package service

import (
	"context"
	"time"

	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// StartSessionCleaner deletes expired and revoked sessions every interval
// until ctx is done.
func StartSessionCleaner(
	ctx context.Context,
	store model.SessionStore,
	interval time.Duration,
	log *logger.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				removed, err := store.DeleteExpired(ctx, now)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Error("Session cleaner: failed to delete expired sessions",
						"error", err.Error())
					continue
				}
				if removed > 0 {
					log.Info("Session cleaner: removed expired sessions",
						"removed", removed)
				}
			}
		}
	}()
}
