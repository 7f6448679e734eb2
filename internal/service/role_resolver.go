package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/observability/metrics"
	"github.com/target/salonbook-ui/internal/ports"
)

// RoleResolverOptions groups dependencies for RoleResolver.
type RoleResolverOptions struct {
	Identity ports.IdentityReader
	Sessions ports.SessionStore
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// RoleResolver looks up the acting user's role once per session and writes it
// back to the session store. Concurrent lookups for one session share a single
// backend call.
type RoleResolver struct {
	identity ports.IdentityReader
	sessions ports.SessionStore
	metrics  *metrics.Metrics
	logger   *slog.Logger
	group    singleflight.Group
}

// NewRoleResolver constructs a RoleResolver.
func NewRoleResolver(opts RoleResolverOptions) *RoleResolver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RoleResolver{
		identity: opts.Identity,
		sessions: opts.Sessions,
		metrics:  opts.Metrics,
		logger:   logger.With("component", "role_resolver"),
	}
}

// Resolve returns sess with its role filled in. A session that already carries
// a resolved role is returned as-is. On failure the session comes back unchanged
// (role unknown) together with the error, which callers only need for 401 handling.
func (r *RoleResolver) Resolve(ctx context.Context, sess domainauth.Session) (domainauth.Session, error) {
	if sess.RoleResolved || sess.Token == "" || sess.ID == "" {
		r.metrics.RoleResolution(metrics.ResultNoop)
		return sess, nil
	}

	v, err, _ := r.group.Do(sess.ID, func() (any, error) {
		// The lookup outlives any single request that joined it.
		flightCtx := context.WithoutCancel(ctx)
		return r.lookup(flightCtx, sess)
	})
	if err != nil {
		return sess, err
	}
	return v.(domainauth.Session), nil
}

func (r *RoleResolver) lookup(ctx context.Context, sess domainauth.Session) (domainauth.Session, error) {
	if cur, err := r.sessions.Get(ctx, sess.ID); err == nil && cur.RoleResolved {
		r.metrics.RoleResolution(metrics.ResultNoop)
		return cur, nil
	}

	id, err := r.identity.Me(ports.WithBearer(ctx, sess.Token))
	if err != nil {
		r.metrics.RoleResolution(metrics.ResultError)
		r.logger.WarnContext(ctx, "role lookup failed", "session_user", sess.UserID, "error", err)
		return sess, err
	}
	r.metrics.RoleResolution(metrics.ResultSuccess)

	sess.Role = id.Role
	sess.RoleResolved = true
	if !sess.HasSalon() {
		sess.SalonID = id.SalonID
	}
	if sess.Name == "" {
		sess.Name = id.Name
	}
	if sess.Email == "" {
		sess.Email = id.Email
	}
	if sess.UserID == "" {
		sess.UserID = id.UserID
	}

	if saveErr := r.sessions.Save(ctx, sess); saveErr != nil {
		// The resolved role still serves this request; the next one looks it up again.
		r.logger.WarnContext(ctx, "persist resolved role failed", "error", saveErr)
	}
	return sess, nil
}
