package main

//
//  @title           ratepulse API
//  @version         1.0
//  @description     Hotel rate aggregation service.
//  @termsOfService  https://github.com/guttosm/ratepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/ratepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        rates
//  @tag.description Endpoints for querying the aggregated rate matrix
//
//  @tag.name        properties
//  @tag.description Endpoints for property metadata
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/ratepulse/config"
	_ "github.com/guttosm/ratepulse/docs" // swagger docs
	"github.com/guttosm/ratepulse/internal/app"
	"github.com/guttosm/ratepulse/internal/logger"
	"github.com/guttosm/ratepulse/internal/provider"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the ratepulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API serving the aggregated rate matrix.
//   - check: Performs a one-shot site-access call against the upstream
//     provider and prints the accessible sites. Useful to verify
//     credentials before deploying.
//
// Flags:
//   - --mode: Execution mode ("api" or "check"). Default: "api".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or check")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "check":
		// One-shot upstream credential check
		logger.L().Info().Msg("checking upstream access")

		client := provider.New(provider.Config{
			URL:      config.AppConfig.Upstream.URL,
			Username: config.AppConfig.Upstream.Username,
			Password: config.AppConfig.Upstream.Password,
			Timeout:  config.AppConfig.Upstream.Timeout,
		})

		checkCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		access, err := client.FetchSiteAccess(checkCtx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("site access check failed")
		}
		for _, site := range access.SiteList {
			logger.L().Info().Int("site_id", site.SiteID).Str("name", site.PrimaryName).Msg("site accessible")
		}
		logger.L().Info().Int("sites", len(access.SiteList)).Msg("upstream access verified")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
