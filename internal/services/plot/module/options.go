package module

import "gasanalysis/internal/platform/config"

// Options holds configuration settings for the plot module
type Options struct {
	WidthIn  float64
	HeightIn float64
}

// FromConfig reads the image size from config with ANALYZE_PLOT_ prefix
func FromConfig(cfg config.Conf) Options {
	pc := cfg.Prefix("ANALYZE_PLOT_")
	o := Options{
		WidthIn:  pc.MayFloat64("WIDTH_IN", 6),
		HeightIn: pc.MayFloat64("HEIGHT_IN", 4.5),
	}
	if o.WidthIn <= 0 {
		o.WidthIn = 6
	}
	if o.HeightIn <= 0 {
		o.HeightIn = 4.5
	}
	return o
}
