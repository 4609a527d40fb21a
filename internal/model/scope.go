package model

import "context"

// DefaultUserID is used when a request carries no user header.
const DefaultUserID = "default"

// Scope identifies who a request acts for.
type Scope struct {
	UserID    string
	RequestID string
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext, or one for DefaultUserID.
func GetScopeFromContext(ctx context.Context) Scope {
	if sc, ok := ctx.Value(scopeCtxKey{}).(Scope); ok {
		return sc
	}
	return Scope{UserID: DefaultUserID}
}
