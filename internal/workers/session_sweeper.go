// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

const defaultSweepInterval = time.Minute

// SessionSweeper drops expired disclosure sessions from the registry and
// reports each one as a vault.session_expired audit event. Expiry is also
// checked on every lookup, so the sweep only frees memory early.
type SessionSweeper struct {
	sessions *service.SessionRegistry
	notifier service.Notifier
	interval time.Duration
	logger   *logger.Logger

	wg sync.WaitGroup
}

func NewSessionSweeper(sessions *service.SessionRegistry, notifier service.Notifier, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeper{
		sessions: sessions,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Debug().Str("func", "*SessionSweeper.Run").Msg("session sweeper stopped")
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Wait blocks until every goroutine started by Run has returned.
func (s *SessionSweeper) Wait() {
	s.wg.Wait()
}

// Sweep removes the expired sessions once and returns how many it removed.
func (s *SessionSweeper) Sweep(ctx context.Context) int {
	owners := s.sessions.Sweep()
	for _, userID := range owners {
		s.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventSessionExpired, UserID: userID})
	}

	if len(owners) > 0 {
		s.logger.Debug().Str("func", "*SessionSweeper.Sweep").Int("expired", len(owners)).Msg("expired sessions swept")
	}
	return len(owners)
}
