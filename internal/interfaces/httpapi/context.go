package httpapi

import (
	"context"

	"github.com/openfooty/roster-api/internal/domain/user"
)

type contextKey int

const principalKey contextKey = iota

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated principal stored by the
// auth middleware, if any.
func PrincipalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey).(user.Principal)
	return p, ok
}
