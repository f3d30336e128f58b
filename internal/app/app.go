package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ratepulse/config"
	"github.com/guttosm/ratepulse/internal/api"
	"github.com/guttosm/ratepulse/internal/cache"
	"github.com/guttosm/ratepulse/internal/provider"
	"github.com/guttosm/ratepulse/internal/service"
)

// newProvider is an indirection used by InitializeApp; overridden in
// tests to avoid real upstream calls.
var newProvider = func(cfg config.Config) provider.API {
	return provider.New(provider.Config{
		URL:      cfg.Upstream.URL,
		Username: cfg.Upstream.Username,
		Password: cfg.Upstream.Password,
		Timeout:  cfg.Upstream.Timeout,
	})
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream provider client from config.
//   - Creates the shared TTL cache bounding upstream calls.
//   - Initializes the aggregation service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream provider client
	client := newProvider(cfg)

	// Shared process-wide TTL cache
	store := cache.New(cfg.Cache.MaxEntries)

	// Aggregation service (business logic)
	svc := service.NewRateService(client, store)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes; readiness rides the cached
	// site-access lookup so probes do not hammer the upstream.
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return svc.Ping(ctx)
	})
	healthHandler.Register(router)

	// Nothing holds external resources; cleanup is a no-op kept for
	// symmetry with the shutdown path.
	cleanup := func() {}

	return router, cleanup, nil
}
