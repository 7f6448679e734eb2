package ports

import "context"

type bearerKey struct{}

// WithBearer returns a context carrying the backend bearer credential for outbound calls.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

// BearerFromContext returns the bearer credential stored by WithBearer.
func BearerFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(bearerKey{}).(string)
	return tok, ok && tok != ""
}
