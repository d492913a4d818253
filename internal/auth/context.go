package auth

import "context"

type contextKey string

const claimsKey contextKey = "gymweb-admin-claims"

// WithClaims stores the authenticated admin on ctx.
func WithClaims(ctx context.Context, claims *JWTClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func FromContext(ctx context.Context) (*JWTClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*JWTClaims)
	return claims, ok
}
