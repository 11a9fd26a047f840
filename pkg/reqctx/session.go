package reqctx

import "context"

type sessionKey struct{}

// WithSessionID кладет идентификатор сессии посетителя в контекст
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID достает идентификатор сессии из контекста
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}
