package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wealth-objective/config"
	httpLayer "wealth-objective/http"
	"wealth-objective/repository"
	"wealth-objective/service"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd)
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a.cfg, a.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

// newHistory picks the Redis history when an address is configured and
// falls back to memory otherwise.
func newHistory(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (repository.ProjectionRepository, func()) {
	if cfg.Addr == "" {
		return repository.NewProjectionRepositoryMemory(cfg.HistorySize), func() {}
	}

	history := repository.NewRedisHistory(
		repository.NewRedisClient(cfg.Addr, cfg.Password, cfg.DB),
		cfg.HistoryKey,
		cfg.HistorySize,
	)
	if err := history.Ping(ctx); err != nil {
		// El historial no es crítico: se sigue arrancando
		logger.Warn("redis unavailable, projections will not be stored", zap.String("addr", cfg.Addr), zap.Error(err))
	}
	return history, func() { _ = history.Close() }
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	history, closeHistory := newHistory(ctx, cfg.Redis, logger)
	defer closeHistory()

	services := httpLayer.Services{
		Projection: service.NewProjectionService(history, logger.Named("projection")),
		Objective:  service.NewObjectiveService(logger.Named("objective"), cfg.Report.BaseYear),
		Holdings:   service.NewHoldingsService(logger.Named("holdings")),
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(services, rateLimiter, httpLayer.NewMetrics(), logger.Named("http")),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
		return err
	}

	logger.Info("server exited")
	return nil
}
