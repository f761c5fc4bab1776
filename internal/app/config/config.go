package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL           string
	HTTPAddr              string
	DirectoryURL          string
	DirectoryTimeout      time.Duration
	DailyWorkloadFallback float64
	IncludeActorBreakdown bool
	IncludeDataDetailRows bool
}

func Load() (Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dirTimeout := 3 * time.Second
	if v := os.Getenv("DIRECTORY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("DIRECTORY_TIMEOUT: %w", err)
		}
		dirTimeout = d
	}

	fallback := 0.0
	if v := os.Getenv("DAILY_WORKLOAD_FALLBACK"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("DAILY_WORKLOAD_FALLBACK: %w", err)
		}
		fallback = f
	}

	breakdown := true
	if v := os.Getenv("INCLUDE_ACTOR_BREAKDOWN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("INCLUDE_ACTOR_BREAKDOWN: %w", err)
		}
		breakdown = b
	}

	detailRows := true
	if v := os.Getenv("INCLUDE_DATA_DETAIL_ROWS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("INCLUDE_DATA_DETAIL_ROWS: %w", err)
		}
		detailRows = b
	}

	// Day is the only supported granularity; reject anything else up front.
	if v := os.Getenv("BUCKET_GRANULARITY"); v != "" && v != "day" {
		return Config{}, fmt.Errorf("BUCKET_GRANULARITY: unsupported value %q", v)
	}

	return Config{
		DatabaseURL:           dbURL,
		HTTPAddr:              addr,
		DirectoryURL:          os.Getenv("DIRECTORY_URL"),
		DirectoryTimeout:      dirTimeout,
		DailyWorkloadFallback: fallback,
		IncludeActorBreakdown: breakdown,
		IncludeDataDetailRows: detailRows,
	}, nil
}
