package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr              string
	VendorAPIBaseURL  string
	FittingAPIBaseURL string
	UpstreamTimeout   time.Duration
	GeminiAPIKey      string
	AllowedOrigins    []string
	ServerLog         *log.Logger
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 15 * time.Second
	if raw := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		}
	}

	vendorBase := envOrDefault("VENDOR_API_URL", "http://localhost:3001")

	// The fitting services usually live behind the same gateway as the
	// vendor API; a separate base URL is only needed when they split.
	fittingBase := strings.TrimSpace(os.Getenv("FITTING_API_URL"))
	if fittingBase == "" {
		fittingBase = vendorBase
	}

	cfg := Config{
		Addr:              envOrDefault("HTTP_ADDR", ":8080"),
		VendorAPIBaseURL:  vendorBase,
		FittingAPIBaseURL: fittingBase,
		UpstreamTimeout:   timeout,
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		AllowedOrigins:    parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		ServerLog:         log.New(os.Stdout, "[wedifit-api] ", log.LstdFlags|log.Lshortfile),
	}

	cfg.ServerLog.Printf("loaded config: vendorAPI=%q fittingAPI=%q narrator=%v",
		cfg.VendorAPIBaseURL, cfg.FittingAPIBaseURL, cfg.GeminiAPIKey != "")

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
