package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"crypto-pulse/internal/config"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func stubCollectorDeps() func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitTracer := initTracerFunc
	origRun := runFunc
	origFatalf := fatalf

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = config.Load
	initTracerFunc = func(ctx context.Context) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initTracerFunc = origInitTracer
		runFunc = origRun
		fatalf = origFatalf
	}
}

func TestMainSuccess(t *testing.T) {
	restore := stubCollectorDeps()
	defer restore()

	ran := false
	runFunc = func(ctx context.Context, cfg *config.Config, tracer trace.Tracer) error {
		ran = true
		return nil
	}
	fatalf = func(format string, v ...any) {
		t.Fatalf("unexpected fatal: "+format, v...)
	}

	main()
	if !ran {
		t.Fatal("run was not invoked")
	}
}

func TestMainRunFailureExitsNonZero(t *testing.T) {
	restore := stubCollectorDeps()
	defer restore()

	runFunc = func(ctx context.Context, cfg *config.Config, tracer trace.Tracer) error {
		return errors.New("disk full")
	}
	var fatalCalled bool
	fatalf = func(format string, v ...any) {
		fatalCalled = true
	}

	main()
	if !fatalCalled {
		t.Fatal("run failure should reach the fatal path")
	}
}

func TestRunBadTimezone(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	cfg := &config.Config{Timezone: "Not/AZone"}

	if err := run(context.Background(), cfg, tp.Tracer("test")); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestRunPersistsDespiteDeadSources(t *testing.T) {
	dir := t.TempDir()
	tp := sdktrace.NewTracerProvider()
	cfg := &config.Config{
		DatasetPath:      filepath.Join(dir, "crypto_data.csv"),
		SnapshotPath:     filepath.Join(dir, "latest_data.json"),
		Timezone:         "UTC",
		PhaseSleepMillis: 0,
	}

	// Providers point at real hosts; with no network every fetch fails
	// and the run must still persist a fully sentinel record.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := run(ctx, cfg, tp.Tracer("test")); err != nil {
		t.Fatalf("degraded run should still succeed: %v", err)
	}
}
