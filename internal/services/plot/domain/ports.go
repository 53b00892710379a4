package domain

import (
	"context"
	"io"

	"gasanalysis/internal/core/table"
)

// PlotterPort is the public port exposed by the module. Each plot returns the path it wrote
type PlotterPort interface {
	Memory(ctx context.Context, t *table.Table, o MemoryOptions) (string, error)
	CPU(ctx context.Context, t *table.Table, o CPUOptions) (string, error)
	Combined(ctx context.Context, t *table.Table, o CombinedOptions) (string, error)
	Summary(ctx context.Context, w io.Writer, t *table.Table, o SummaryOptions) error
}

// Renderer draws a chart into an image file; the format follows the path's extension
type Renderer interface {
	Render(c Chart, path string) error
}
