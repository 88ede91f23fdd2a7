package services

import "context"

// Severity classifies a user-facing notification.
type Severity string

// Notification severities.
const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier delivers user-facing feedback about operation outcomes.
// Fire-and-forget: callers never consume a result.
type Notifier interface {
	Notify(ctx context.Context, title, message string, severity Severity)
}
