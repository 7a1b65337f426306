package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"crypto-pulse/internal/collector"
	"crypto-pulse/internal/config"
	"crypto-pulse/internal/provider"
	"crypto-pulse/internal/recorder"
	"crypto-pulse/pkg/tracing"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initTracerFunc = tracing.InitTracer
	runFunc        = run
	fatalf         = log.Fatalf
)

// main is a one-shot entry point: an external scheduler decides when a
// run happens. Per-metric fetch failures degrade to sentinels inside
// the collector; only assembly or persistence errors exit non-zero.
func main() {
	loadEnvFunc()
	cfg := loadConfigFunc()

	ctx := context.Background()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		fatalf("failed to initialize tracer: %v", err)
	}

	runErr := runFunc(ctx, cfg, tracer)

	if err := tp.Shutdown(ctx); err != nil {
		log.Printf("error shutting down tracer provider: %v", err)
	}
	if runErr != nil {
		fatalf("collection run failed: %v", runErr)
	}
	log.Println("Collection run complete")
}

func run(ctx context.Context, cfg *config.Config, tracer trace.Tracer) error {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	c := collector.New(
		tracer,
		provider.NewFearGreedProvider(tracer),
		provider.NewCoinGeckoProvider(tracer),
		provider.NewBinanceProvider(tracer),
		provider.NewBybitProvider(tracer),
		provider.NewBinanceFuturesProvider(tracer),
		location,
		time.Duration(cfg.PhaseSleepMillis)*time.Millisecond,
	)

	record := c.Collect(ctx)

	rec := recorder.New(tracer, cfg.DatasetPath, cfg.SnapshotPath)
	if err := rec.Record(ctx, record); err != nil {
		return err
	}
	log.Printf("Data saved to %s, snapshot at %s", cfg.DatasetPath, cfg.SnapshotPath)
	return nil
}
