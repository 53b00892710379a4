package module

import (
	"time"

	"gasanalysis/internal/adapters/ingest/tracefile"
	"gasanalysis/internal/platform/config"
)

// Options holds configuration options for the traces service
type Options struct {
	MaxLineBytes int
	HTTPTimeout  time.Duration
}

// FromConfig reads the traces options from config with ANALYZE_ prefix
func FromConfig(cfg config.Conf) Options {
	an := cfg.Prefix("ANALYZE_")
	return Options{
		MaxLineBytes: an.MayInt("MAX_LINE_BYTES", tracefile.DefaultMaxLineBytes),
		HTTPTimeout:  an.MayDuration("HTTP_TIMEOUT", 5*time.Minute),
	}
}
