package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// logNotifier writes audit events to the structured log.
type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that logs every event at info level
// with an "audit" marker. The request scoped logger is preferred so events
// carry the trace id.
func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, event models.AuditEvent) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = n.logger
	}

	e := log.Info().
		Bool("audit", true).
		Str("event", event.Kind).
		Int64("user_id", event.UserID)
	if event.EntryID != "" {
		e = e.Str("entry_id", event.EntryID)
	}
	if event.Detail != "" {
		e = e.Str("detail", event.Detail)
	}
	e.Msg("vault audit event")
}
