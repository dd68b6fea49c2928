package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hbnb/rental-directory/internal/api"
	"github.com/hbnb/rental-directory/internal/api/metrics"
	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/service"
	"github.com/hbnb/rental-directory/internal/infrastructure/db/redis"
	"github.com/hbnb/rental-directory/internal/infrastructure/memory"
	"github.com/hbnb/rental-directory/internal/infrastructure/seed"
	"github.com/hbnb/rental-directory/internal/pkg/config"
	"github.com/hbnb/rental-directory/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var (
		port     string
		seedFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			applyServeFlags(cfg, port, seedFile)
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML fixture loaded before serving (overrides SEED_FILE)")
	return cmd
}

func applyServeFlags(cfg *config.Config, port, seedFile string) {
	if port != "" {
		cfg.Port = port
	}
	if seedFile != "" {
		cfg.SeedFile = seedFile
	}
}

// loggerOptions selects console output in development and JSON elsewhere.
func loggerOptions(cfg *config.Config) logger.Options {
	return logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "hbnb",
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Init(loggerOptions(cfg))

	facade := service.NewFacade(
		memory.NewRepositories(),
		domain.ReviewPolicy{TextMax: cfg.Reviews.TextMax},
		metrics.NewRecorder(),
		logger.Component("facade"),
	)

	if cfg.SeedFile != "" {
		stats, err := seed.ApplyFile(ctx, facade, cfg.SeedFile)
		if err != nil {
			return err
		}
		log.Info().
			Str("file", cfg.SeedFile).
			Int("users", stats.Users).
			Int("amenities", stats.Amenities).
			Int("places", stats.Places).
			Int("reviews", stats.Reviews).
			Msg("seed data loaded")
	}

	deps := api.Dependencies{
		Facade: facade,
		Logger: logger.Component("http"),
	}

	if cfg.IdempotencyEnabled() {
		store, closeStore, err := redis.OpenIdempotencyStore(ctx, redis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := closeStore(); err != nil {
				log.Warn().Err(err).Msg("closing redis")
			}
		}()
		deps.Idempotency = store
		deps.IdempotencyTTL = cfg.Redis.IdempotencyTTL
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency keys enabled")
	}

	e := api.NewRouter(deps)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
