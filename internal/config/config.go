package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatasetPath      string
	SnapshotPath     string
	Timezone         string
	PhaseSleepMillis int
}

func Load() *Config {
	cfg := &Config{}

	cfg.DatasetPath = strings.TrimSpace(os.Getenv("DATASET_PATH"))
	if cfg.DatasetPath == "" {
		cfg.DatasetPath = "crypto_data.csv"
	}

	cfg.SnapshotPath = strings.TrimSpace(os.Getenv("SNAPSHOT_PATH"))
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = "latest_data.json"
	}

	cfg.Timezone = strings.TrimSpace(os.Getenv("COLLECTOR_TIMEZONE"))
	if cfg.Timezone == "" {
		cfg.Timezone = "America/Chicago"
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		log.Printf("Warning: unknown COLLECTOR_TIMEZONE=%q, defaulting to America/Chicago", cfg.Timezone)
		cfg.Timezone = "America/Chicago"
	}

	cfg.PhaseSleepMillis = 1000
	if v := strings.TrimSpace(os.Getenv("PHASE_SLEEP_MILLIS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.PhaseSleepMillis = n
		}
	}

	return cfg
}
