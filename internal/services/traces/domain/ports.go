package domain

import (
	"context"
	"io"

	"gasanalysis/internal/core/table"
)

// LoaderPort is the public port exposed by the module
type LoaderPort interface {
	Load(ctx context.Context, location string, w Window) (*table.Table, error)
	Combine(ctx context.Context, locations []string, w Window) (*table.Table, error)
}

// Opener returns the compressed stream for a trace location
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// ReaderPort is the line reader interface
type ReaderPort interface {
	Next() (Line, error)
	Close() error
	Stats() (lines int, bytes int64)
}

// ReaderFactory is the line reader factory interface
type ReaderFactory interface {
	New(io.ReadCloser) (ReaderPort, error)
}

// Decoder turns one JSON line into flattened fields
type Decoder interface {
	Decode(line []byte) ([]table.Field, error)
}
