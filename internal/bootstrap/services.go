package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/target/salonbook-ui/config"
	"github.com/target/salonbook-ui/internal/adapters/memory"
	redisadapter "github.com/target/salonbook-ui/internal/adapters/redis"
	"github.com/target/salonbook-ui/internal/adapters/salonapi"
	"github.com/target/salonbook-ui/internal/clock"
	"github.com/target/salonbook-ui/internal/observability/metrics"
	"github.com/target/salonbook-ui/internal/ports"
	"github.com/target/salonbook-ui/internal/service"
)

// memorySessionCapacity bounds the development session store.
const memorySessionCapacity = 10000

// ServiceContainer holds every service the HTTP layer depends on.
type ServiceContainer struct {
	Auth         *service.AuthService
	Roles        *service.RoleResolver
	Workspaces   *service.WorkspaceStore
	Messages     *service.MessagesService
	Salons       *service.SalonService
	Portfolio    *service.PortfolioService
	Catalog      *service.CatalogService
	FAQs         *service.FAQService
	Reviews      *service.ReviewService
	Admin        *service.AdminService
	Uploads      *service.UploadService
	Registration *service.RegistrationService
	Stats        ports.StatsProvider
	Metrics      *metrics.Metrics
}

// ServiceDeps contains dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	// HTTPClient overrides the backend API client transport (tests).
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewSessionStore picks the session store named by the auth config.
//
//nolint:ireturn // the store implementation is chosen at runtime.
func NewSessionStore(cfg config.AuthConfig, client redis.UniversalClient) (ports.SessionStore, error) {
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		return memory.NewSessionStore(memorySessionCapacity, cfg.SessionTTL), nil
	default:
		if client == nil {
			return nil, errors.New("redis session store requires a redis client")
		}
		return redisadapter.NewSessionStoreWithPrefix(client, cfg.SessionKeyPrefix), nil
	}
}

// NewServices wires the backend client, the session store and every service.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps require a config")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := metrics.New(cfg.Observability.MetricsEnabled)

	api, err := salonapi.New(salonapi.Options{
		BaseURL:    cfg.SalonAPI.BaseURL,
		Timeout:    cfg.SalonAPI.Timeout,
		RolePath:   cfg.SalonAPI.RolePath,
		SalonPath:  cfg.SalonAPI.SalonPath,
		HTTPClient: deps.HTTPClient,
		Metrics:    m,
		Logger:     logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build salon api client: %w", err)
	}

	sessions, err := NewSessionStore(cfg.Auth, deps.RedisClient)
	if err != nil {
		return ServiceContainer{}, err
	}

	workspaces := service.NewWorkspaceStore(service.WorkspaceStoreOptions{
		MaxSessions: cfg.Workspace.MaxSessions,
		TTL:         cfg.Workspace.TTL,
	})
	auth := service.NewAuthService(service.AuthServiceOptions{
		Backend:    api,
		Sessions:   sessions,
		SessionTTL: cfg.Auth.SessionTTL,
		Logger:     logger,
	})

	return ServiceContainer{
		Auth: auth,
		Roles: service.NewRoleResolver(service.RoleResolverOptions{
			Identity: api,
			Sessions: sessions,
			Metrics:  m,
			Logger:   logger,
		}),
		Workspaces:   workspaces,
		Messages:     service.NewMessagesService(workspaces, clock.Real{}),
		Salons:       service.NewSalonService(service.SalonServiceOptions{Repo: api, Logger: logger}),
		Portfolio:    service.NewPortfolioService(api),
		Catalog:      service.NewCatalogService(api),
		FAQs:         service.NewFAQService(api),
		Reviews:      service.NewReviewService(api),
		Admin:        service.NewAdminService(service.AdminServiceOptions{Repo: api, Logger: logger}),
		Uploads:      service.NewUploadService(api, cfg.HTTP.MaxUploadBytes),
		Registration: service.NewRegistrationService(auth),
		Stats:        service.StaticStats{},
		Metrics:      m,
	}, nil
}

// RunConfig contains what Run needs to serve until ctx is cancelled.
type RunConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// Run serves HTTP until ctx is done or the server fails, then drains in-flight
// requests for at most HTTP.ShutdownTimeout.
func Run(ctx context.Context, cfg *RunConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("run config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := NewHTTPServer(&HTTPServerConfig{
		Config:      cfg.Config,
		Services:    cfg.Services,
		RedisClient: cfg.RedisClient,
		Logger:      logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return ShutdownHTTPServer(ShutdownConfig{
			Server:  server,
			Timeout: cfg.Config.HTTP.ShutdownTimeout,
			Logger:  logger,
		})
	})
	return g.Wait()
}
