package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SessionPurger is the slice of the session store the cleanup worker uses.
type SessionPurger interface {
	DeleteExpired() (int64, error)
}

// SessionCleanupService sweeps expired session rows in the background so the
// sessions table does not grow without bound.
type SessionCleanupService struct {
	sessions SessionPurger
	logger   zerolog.Logger
	interval time.Duration
}

func NewSessionCleanupService(sessions SessionPurger, logger zerolog.Logger) *SessionCleanupService {
	return &SessionCleanupService{
		sessions: sessions,
		logger:   logger,
		interval: time.Minute,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *SessionCleanupService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session cleanup worker stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SessionCleanupService) sweep() {
	purged, err := s.sessions.DeleteExpired()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to purge expired sessions")
		return
	}
	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("expired sessions removed")
	}
}
