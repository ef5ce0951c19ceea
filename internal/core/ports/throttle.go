package ports

import "context"

// LoginThrottle guards the login endpoint against brute-force attempts.
// Implementations are best-effort: on backend failure callers fail open.
type LoginThrottle interface {
	// Blocked reports whether further attempts for username are refused.
	Blocked(ctx context.Context, username string) (bool, error)
	// RecordFailure notes one failed attempt.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, username string) error
}

// NopLoginThrottle never blocks; used when Redis is not configured and in
// tests.
type NopLoginThrottle struct{}

func (NopLoginThrottle) Blocked(context.Context, string) (bool, error) { return false, nil }
func (NopLoginThrottle) RecordFailure(context.Context, string) error   { return nil }
func (NopLoginThrottle) Reset(context.Context, string) error           { return nil }
