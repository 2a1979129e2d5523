package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	AppName    = "Squares"
	AppVersion = "1.0.0"
)

// UserAgent identifies the Squares poller to feed servers.
var UserAgent = AppName + "/" + AppVersion

type Config struct {
	Addr         string
	DataDir      string
	DBPath       string
	Platform     string // storage locator selection: portable, home, xdg
	StaticDir    string
	PollInterval time.Duration
	LogLevel     string
	Debug        bool
}

// Load reads configuration from the environment. The debug flag is
// carried here and threaded through initialization; nothing toggles
// ambient global state.
func Load() Config {
	addr := os.Getenv("SQUARES_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("SQUARES_DATA_DIR")
	dbPath := os.Getenv("SQUARES_DB_PATH")
	platform := os.Getenv("SQUARES_PLATFORM")
	if platform == "" {
		platform = "portable"
	}
	staticDir := os.Getenv("SQUARES_STATIC_DIR")
	interval := 15 * time.Minute
	if raw := os.Getenv("SQUARES_POLL_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			interval = d
		}
	}
	logLevel := os.Getenv("SQUARES_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	debug, _ := strconv.ParseBool(os.Getenv("SQUARES_DEBUG"))

	cfg := Config{
		Addr:         addr,
		DataDir:      dataDir,
		DBPath:       dbPath,
		Platform:     platform,
		StaticDir:    staticDir,
		PollInterval: interval,
		LogLevel:     logLevel,
		Debug:        debug,
	}
	if cfg.DataDir != "" {
		cfg.DataDir = filepath.Clean(cfg.DataDir)
	}
	if cfg.DBPath != "" {
		cfg.DBPath = filepath.Clean(cfg.DBPath)
	}
	return cfg
}
