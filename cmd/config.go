package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig and passed to extensions.
const (
	EnvANAURL  = "DADOS_ANA_URL"
	EnvFanOut  = "DADOS_FANOUT"
	EnvCache   = "DADOS_CACHE"
	EnvDebug   = "DADOS_DEBUG"
	EnvTimeout = "DADOS_TIMEOUT"
)

// Config holds the global settings of the dados command.
type Config struct {
	ANABaseURL string        // empty means the public service
	FanOut     int           // concurrent ANA station fetches, 0 means the default
	Cache      bool          // cache upstream responses on disk for the day
	Debug      bool          // debug logging
	Timeout    time.Duration // bound on a whole command, 0 means none
	Plain      bool          // print raw Markdown
}

// LoadConfig reads the configuration from the environment, optionally loaded from a
// .env file in the working directory.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env") // ignore missing file

	cfg := Config{}
	cfg.ANABaseURL = strings.TrimSpace(os.Getenv(EnvANAURL))

	if v := strings.TrimSpace(os.Getenv(EnvFanOut)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid %s %q: want a non negative integer", EnvFanOut, v)
		}
		cfg.FanOut = n
	}

	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}

	cfg.Cache = isTrue(os.Getenv(EnvCache))
	cfg.Debug = isTrue(os.Getenv(EnvDebug))
	return cfg, nil
}

func isTrue(v string) bool {
	v = strings.TrimSpace(v)
	return v == "1" || strings.EqualFold(v, "true")
}

// Environ returns cfg as environment variables, the way LoadConfig reads them.
func (cfg Config) Environ() []string {
	return []string{
		EnvANAURL + "=" + cfg.ANABaseURL,
		EnvFanOut + "=" + strconv.Itoa(cfg.FanOut),
		EnvCache + "=" + strconv.FormatBool(cfg.Cache),
		EnvDebug + "=" + strconv.FormatBool(cfg.Debug),
		EnvTimeout + "=" + cfg.Timeout.String(),
	}
}
