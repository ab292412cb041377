package workers

import (
	"context"
	"time"

	"karigar_backend/internal/logger"
	"karigar_backend/internal/repositories"

	"gorm.io/gorm"
)

// SessionWorker периодически чистит истекшие сессии
type SessionWorker struct {
	db       *gorm.DB
	repo     repositories.SessionRepository
	interval time.Duration
}

func NewSessionWorker(db *gorm.DB, repo repositories.SessionRepository, interval time.Duration) *SessionWorker {
	return &SessionWorker{
		db:       db,
		repo:     repo,
		interval: interval,
	}
}

// Start запускает фоновую чистку. Останавливается отменой контекста.
func (w *SessionWorker) Start(ctx context.Context) {
	go w.cleanupLoop(ctx)
}

func (w *SessionWorker) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("session worker stopped")
			return
		case <-ticker.C:
			removed, err := w.repo.DeleteExpired(w.db)
			logger.WorkerLog("session_worker", "cleanup_expired", err)
			if err == nil && removed > 0 {
				logger.Info("expired sessions removed", "count", removed)
			}
		}
	}
}
