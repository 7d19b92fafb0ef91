package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aerofitlabs/survey-insights/internal/config"
	"github.com/aerofitlabs/survey-insights/internal/dataset"
	"github.com/aerofitlabs/survey-insights/internal/db"
	httpSrv "github.com/aerofitlabs/survey-insights/internal/http"
	"github.com/aerofitlabs/survey-insights/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger.Init(cfg.Log.Level)

		// Malformed input is fatal: no partial load, no server.
		table, err := dataset.Load(cfg.Dataset.Path)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		logger.Log.Info("dataset loaded",
			zap.String("path", cfg.Dataset.Path),
			zap.Int("records", table.Len()),
		)

		// Rate limiting is optional; without redis the limiter is a no-op.
		var rds *redis.Client
		if cfg.Redis.Addr != "" {
			rds, err = db.NewRedisClient(db.RedisOpts{
				Addr:        cfg.Redis.Addr,
				Password:    cfg.Redis.Password,
				DB:          cfg.Redis.DB,
				DialTimeout: cfg.Redis.DialTimeout,
			})
			if err != nil {
				return fmt.Errorf("redis connect: %w", err)
			}
			defer func() { _ = rds.Close() }()
		}

		server := httpSrv.NewServer(cfg, table, rds)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.Log.Info("signal received, shutting down", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil {
				logger.Log.Error("http server exited", zap.Error(err))
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)

		return nil
	},
}
