// Package session carries the authenticated identity through the request
// context as an explicit value. The absence of a value is the "no session"
// state; nothing in the service reads ambient global auth state.
package session

import "context"

// Session is the authenticated identity a request acts under.
type Session struct {
	UserID string
	Email  string
}

// sessionKeyType keeps the context key private to this package.
type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext extracts the session from the context. The second return value
// is false when no session is active.
func FromContext(ctx context.Context) (Session, bool) {
	if ctx == nil {
		return Session{}, false
	}
	sess, ok := ctx.Value(sessionKey).(Session)
	if !ok || sess.UserID == "" {
		return Session{}, false
	}
	return sess, true
}
