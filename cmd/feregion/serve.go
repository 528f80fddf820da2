package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/feregion-service/internal/adapter/cache"
	httpadapter "github.com/couchcryptid/feregion-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/feregion-service/internal/adapter/kafka"
	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/couchcryptid/feregion-service/internal/observability"
	"github.com/couchcryptid/feregion-service/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve region lookups over HTTP and, if enabled, classify the Kafka bulletin stream",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// A long-running service has no command output to protect, so it
		// logs to stdout like the other storm-data services.
		logger = sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)

		idx, err := loadIndex()
		if err != nil {
			return err
		}

		metrics := observability.NewMetrics()
		metrics.DatasetRegions.Set(float64(idx.RegionCount()))

		classifier := feregion.NewClassifier(idx, logger)
		extents := cache.NewCachedExtents(feregion.NewReverseMapper(idx, logger), cfg.ExtentCacheSize, metrics)

		var limiter *rate.Limiter
		if cfg.RateLimitRPS > 0 {
			limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		}
		api := httpadapter.NewAPI(classifier, extents, limiter, metrics, logger)

		g, gctx := errgroup.WithContext(ctx)

		// Without the pipeline the service is ready as soon as the dataset is loaded.
		var ready sharedobs.ReadinessChecker = httpadapter.ReadinessFunc(func(context.Context) error { return nil })
		if cfg.KafkaEnabled {
			reader := kafkaadapter.NewReader(cfg, logger)
			writer := kafkaadapter.NewWriter(cfg, logger)
			defer closeAll(reader.Close, writer.Close)

			p := pipeline.New(reader, pipeline.NewTransformer(classifier, logger, metrics), writer, logger, metrics, cfg.BatchSize)
			ready = p
			g.Go(func() error { return p.Run(gctx) })
			logger.Info("kafka pipeline enabled",
				"source", cfg.KafkaSourceTopic,
				"sink", cfg.KafkaSinkTopic,
				"group", cfg.KafkaGroupID,
			)
		}

		addr := cfg.HTTPAddr
		if serveAddr != "" {
			addr = serveAddr
		}
		srv := httpadapter.NewServer(addr, api, ready, logger)

		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		err = g.Wait()
		logger.Info("shutdown complete")
		return err
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func closeAll(closers ...func() error) {
	for _, c := range closers {
		if err := c(); err != nil {
			logger.Error("close error", "error", err)
		}
	}
}
