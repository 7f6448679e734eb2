package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/salonbook-ui/config"
	httpx "github.com/target/salonbook-ui/internal/http"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewHTTPServer builds the router and the server around it. The caller starts it.
func NewHTTPServer(cfg *HTTPServerConfig) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	handler := httpx.NewRouter(routerServices(appCfg, cfg.Services, cfg.RedisClient, logger))

	addr := appCfg.HTTP.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func routerServices(cfg *config.AppConfig, s ServiceContainer, rdb redis.UniversalClient, logger *slog.Logger) httpx.RouterServices {
	checks := map[string]httpx.HealthCheck{}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	return httpx.RouterServices{
		Auth:             s.Auth,
		Roles:            s.Roles,
		Workspaces:       s.Workspaces,
		Messages:         s.Messages,
		Salons:           s.Salons,
		Portfolio:        s.Portfolio,
		Catalog:          s.Catalog,
		FAQs:             s.FAQs,
		Reviews:          s.Reviews,
		Admin:            s.Admin,
		Uploads:          s.Uploads,
		Registration:     s.Registration,
		Stats:            s.Stats,
		Metrics:          s.Metrics,
		HealthChecks:     checks,
		CookieName:       cfg.Auth.SessionCookieName,
		CookieDomain:     cfg.HTTP.CookieDomain,
		MaxUploadBytes:   cfg.HTTP.MaxUploadBytes,
		CompressionLevel: cfg.HTTP.CompressionLevel,
		IsDev:            cfg.IsDev,
		Logger:           logger,
	}
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Server  *http.Server
	Timeout time.Duration
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server", "timeout", timeout)
	}

	// The parent context is already cancelled at this point.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}
	return nil
}
