package httpx

import (
	"context"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
)

type sessionKey struct{}

// SetSessionInContext attaches the authenticated session. A nil session leaves ctx as is.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext returns the session placed by RequireAuthBrowser or
// ResolveRole, or nil outside the authenticated route group.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	s, _ := ctx.Value(sessionKey{}).(*domainauth.Session)
	return s
}
