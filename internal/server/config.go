package server

import (
	"log"
	"strconv"

	"github.com/ironsheep/paint-preview-mcp/internal/imaging"
	"github.com/ironsheep/paint-preview-mcp/internal/paint"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel         = "PAINT_MCP_LOG_LEVEL"
	EnvDefaultTolerance = "PAINT_MCP_DEFAULT_TOLERANCE"
	EnvMaxDimension     = "PAINT_MCP_MAX_DIMENSION"
	EnvJPEGQuality      = "PAINT_MCP_JPEG_QUALITY"
)

// DefaultMaxDimension bounds the longest side of a photo before processing.
const DefaultMaxDimension = 2048

// Config holds the server settings.
type Config struct {
	// LogLevel is "" or "debug".
	LogLevel string

	// DefaultTolerance applies to every channel when a call omits tolerance.
	DefaultTolerance int

	// MaxDimension downscales larger photos before segmentation; 0 disables.
	MaxDimension int

	// JPEGQuality is used for JPEG output unless a call overrides it.
	JPEGQuality int
}

// DefaultConfig returns the settings used when no environment is set.
func DefaultConfig() Config {
	return Config{
		DefaultTolerance: paint.DefaultTolerance,
		MaxDimension:     DefaultMaxDimension,
		JPEGQuality:      imaging.DefaultJPEGQuality,
	}
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

// ConfigFromEnv builds a Config from environment lookups (usually
// os.Getenv). Unset variables keep their defaults; malformed or
// out-of-range values are logged and ignored.
func ConfigFromEnv(getenv func(string) string) Config {
	cfg := DefaultConfig()
	cfg.LogLevel = getenv(EnvLogLevel)

	if v, ok := envInt(getenv, EnvDefaultTolerance, 0, 255); ok {
		cfg.DefaultTolerance = v
	}
	if v, ok := envInt(getenv, EnvMaxDimension, 0, 1<<15); ok {
		cfg.MaxDimension = v
	}
	if v, ok := envInt(getenv, EnvJPEGQuality, 1, 100); ok {
		cfg.JPEGQuality = v
	}
	return cfg
}

func envInt(getenv func(string) string, key string, min, max int) (int, bool) {
	raw := getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		log.Printf("Ignoring %s=%q: want an integer in [%d, %d]", key, raw, min, max)
		return 0, false
	}
	return v, true
}
