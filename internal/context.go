package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextAuthKey ctxKey = "auth"

// AuthContext is the immutable per-request identity produced once by the auth
// middleware from validated token claims and threaded through function
// arguments. There is no process-global security state.
type AuthContext struct {
	Subject     string
	Role        string
	DisplayName string
	Claims      map[string]string
}

// Claim returns a single claim value, "" when absent.
func (a AuthContext) Claim(key string) string {
	return a.Claims[key]
}

func AuthFromContext(ctx context.Context) (AuthContext, bool) {
	if ctx == nil {
		return AuthContext{}, false
	}
	auth, ok := ctx.Value(contextAuthKey).(AuthContext)
	return auth, ok
}

func ContextWithAuth(ctx context.Context, auth AuthContext) context.Context {
	return context.WithValue(ctx, contextAuthKey, auth)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
