// Package notify implements the notification sink on the structured logger.
// Every user-facing outcome becomes a tagged log entry that the frontend (or
// an ops pipeline) can surface as a toast.
package notify

import (
	"context"

	"go.uber.org/zap"

	"notehub/internal/ports/services"
	"notehub/pkg/logger"
)

// LogNotifier implements services.Notifier on zap.
type LogNotifier struct{}

// NewLogNotifier creates the log-backed notifier.
func NewLogNotifier() services.Notifier {
	return &LogNotifier{}
}

// Notify records the notification at a level matching its severity.
func (n *LogNotifier) Notify(ctx context.Context, title, message string, severity services.Severity) {
	log := logger.Log(ctx).With(
		zap.String("notification", title),
		zap.String("severity", string(severity)),
	)

	switch severity {
	case services.SeverityError:
		log.Error(ctx, message)
	case services.SeverityWarning:
		log.Warn(ctx, message)
	default:
		log.Info(ctx, message)
	}
}
