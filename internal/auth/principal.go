package auth

import (
	"context"
	"time"
)

// Principal is the authenticated user for one request.
type Principal struct {
	UserID    uint
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// ActorID returns the principal's user id, or nil for anonymous requests.
func ActorID(ctx context.Context) *uint {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		return nil
	}
	id := p.UserID
	return &id
}
