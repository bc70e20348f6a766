package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"awesomedevevents/config"
	transporthttp "awesomedevevents/internal/delivery/http"
	"awesomedevevents/internal/delivery/http/controllers"
	"awesomedevevents/internal/services"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server.

The server exposes:
  - GET, POST        /api/dev-events
  - GET, PUT, DELETE /api/dev-events/{id}
  - POST             /api/dev-events/{id}/speakers
  - GET              /swagger/* (when SWAGGER_ENABLED)

SIGINT or SIGTERM drains in-flight requests before exiting.`,
	Example: `  # Postgres from DATABASE_URL, migrations applied on start
  devevents serve

  # Embedded SQLite on a custom port
  STORAGE_DRIVER=sqlite devevents serve --port 9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}
		logger := config.NewLogger(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, cfg, logger)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
	RootCmd.AddCommand(serveCmd)
}

func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warn("close store", "err", err)
		}
	}()

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return serve(ctx, newServer(cfg, logger, st), ln, logger)
}

func newServer(cfg *config.Config, logger *slog.Logger, st *store) *http.Server {
	svc := services.NewEventService(st.events, st.speakers, st.tx, cfg.DBTimeout)
	handler := transporthttp.NewRouter(logger, controllers.NewEventController(logger, svc), transporthttp.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SwaggerEnabled:     cfg.SwaggerEnabled,
	})
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serve runs srv on ln until ctx is cancelled or the server fails, then shuts it down.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *slog.Logger) error {
	logger.Info("api listening", "addr", ln.Addr().String())

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Serve(ln)
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
