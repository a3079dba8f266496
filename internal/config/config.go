package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sidechain-audio/triggerscan/internal/logger"
)

// ScanConfig holds every environment-driven knob the scan engine and
// its CLI need. There is no generic config framework here, same as
// the rest of this corpus: fail fast on the one required variable,
// default everything else.
type ScanConfig struct {
	FingerprintToolPath string
	ScratchDir          string
	Debug               bool
	Workers             int
	DeltaMs             int
}

// Load reads a .env file if present (missing is fine, a deployed
// process sets real environment variables instead) and builds a
// ScanConfig from the environment.
//
// REQUIRED:
//   - FINGERPRINT_TOOL_PATH: path to the external fingerprint binary.
func Load() (*ScanConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found, using system environment variables")
	}

	toolPath := os.Getenv("FINGERPRINT_TOOL_PATH")
	if toolPath == "" {
		return nil, fmt.Errorf("FINGERPRINT_TOOL_PATH environment variable not set - this is REQUIRED to run a scan")
	}

	return &ScanConfig{
		FingerprintToolPath: toolPath,
		ScratchDir:          getEnvOrDefault("SCAN_SCRATCH_DIR", "/tmp/sidechain_scan"),
		Debug:               getEnvBool("SCAN_DEBUG", false),
		Workers:             getEnvInt("SCAN_WORKERS", defaultWorkers()),
		DeltaMs:             getEnvInt("SCAN_DELTA_MS", 100),
	}, nil
}

func defaultWorkers() int {
	n := runtime.NumCPU()
	if n > 8 {
		return 8
	}
	if n < 1 {
		return 1
	}
	return n
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
