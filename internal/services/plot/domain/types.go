// Package domain holds the plot contract: option sets, views, charts and the renderer port
package domain

import (
	"gasanalysis/internal/core/regress"
	"gasanalysis/internal/core/table"
)

// Derived column names
const (
	// ColMemoryIntensive is true when a row allocated more memory than the threshold
	ColMemoryIntensive = "memory_intensive"
	// ColCombinedUsage holds the first principal component of memory and clock time
	ColCombinedUsage = "usage.combined"
)

// Default output templates; {0} is the window start and {1} the stop
const (
	MemoryTemplate   = "plots/memory-gas-{0}-{1}.pdf"
	CPUTemplate      = "plots/cpu-gas-{0}-{1}.pdf"
	CombinedTemplate = "plots/combined-gas-{0}-{1}.pdf"
)

// DefaultMemoryThreshold splits memory intensive transactions from the rest, in bytes
const DefaultMemoryThreshold int64 = 300_000

// DoSClockTime is the clock time in seconds at which a transaction counts as a DoS outlier
const DoSClockTime = 1.0

// MemoryOptions configures the memory plot
type MemoryOptions struct {
	MaxMemory       *int64 // nil or zero keeps every row
	MemoryThreshold int64
	Output          string // template; empty uses MemoryTemplate
	Start, Stop     int
}

// CPUOptions configures the cpu plot
type CPUOptions struct {
	IncludeDoS  bool
	Output      string
	Start, Stop int
}

// CombinedOptions configures the combined resource usage plot
type CombinedOptions struct {
	IncludeDoS  bool
	Output      string
	Start, Stop int
}

// SummaryOptions configures the fit summary; the memory and cpu views use the same filters as their plots
type SummaryOptions struct {
	MaxMemory       *int64
	MemoryThreshold int64
	IncludeDoS      bool
}

// View describes one plot: how rows are prepared, which columns are drawn and how they are grouped
type View struct {
	Name     string
	X, Y     string
	XLabel   string
	YLabel   string
	Template string

	// Prepare filters the table and adds derived columns; nil keeps the table as is
	Prepare func(*table.Table) (*table.Table, error)

	// Fallback is the group column used when the table has no type column; empty means one group
	Fallback string
}

// Series is one colored group of points with its fitted line
type Series struct {
	Name   string
	X, Y   []float64
	Fit    regress.Fit
	HasFit bool
}

// Chart is everything a renderer needs to draw one plot
type Chart struct {
	Group  string // legend heading; empty when all points form one group
	XLabel string
	YLabel string
	Series []Series
}

// Points returns the total number of points across all series
func (c Chart) Points() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.X)
	}
	return n
}
