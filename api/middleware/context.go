package middleware

import (
	"context"

	pkgAuth "github.com/greenloopdev/wastetrack-backend/pkg/auth"
)

type contextKey string

const ctxIdentity contextKey = "identity"

// IdentityFromContext returns the authenticated caller seeded by the Auth
// middleware. The second return is false on unauthenticated requests.
func IdentityFromContext(ctx context.Context) (pkgAuth.Identity, bool) {
	if ctx == nil {
		return pkgAuth.Identity{}, false
	}
	if v, ok := ctx.Value(ctxIdentity).(pkgAuth.Identity); ok {
		return v, true
	}
	return pkgAuth.Identity{}, false
}

// WithIdentity injects the caller identity into the context.
func WithIdentity(ctx context.Context, identity pkgAuth.Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxIdentity, identity)
}
