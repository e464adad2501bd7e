package logger

import (
	"context"
	"log/slog"
)

// Limiter forwards only the first N records of each event to a logger.
// The counts are per Limiter, so each pool gets its own budget of messages.
//
// A Limiter is not safe for concurrent use.
type Limiter struct {
	log    *slog.Logger
	counts map[string]int
}

// NewLimiter returns a Limiter writing to log. A nil log uses L at call time.
func NewLimiter(log *slog.Logger) *Limiter {
	return &Limiter{log: log, counts: make(map[string]int)}
}

func (l *Limiter) logger() *slog.Logger {
	if l.log != nil {
		return l.log
	}
	return L
}

// Limit logs msg at level only for the first n occurrences of event and
// reports whether it was emitted. The occurrence is counted either way.
func (l *Limiter) Limit(event string, n int, level slog.Level, msg string, args ...any) bool {
	c := l.counts[event]
	l.counts[event] = c + 1
	if c >= n {
		return false
	}
	l.logger().Log(context.Background(), level, msg, args...)
	return true
}

// Loud logs msg at error level every time. Used for configuration errors
// that should never happen and must not be hidden by rate limiting.
func (l *Limiter) Loud(event string, msg string, args ...any) {
	l.counts[event]++
	l.logger().Error(msg, args...)
}

// Count returns how many times event occurred, emitted or not.
func (l *Limiter) Count(event string) int {
	return l.counts[event]
}
