// Package ingest adapts the tracefile reader and flattener to the traces domain ports
package ingest

import (
	"io"

	"gasanalysis/internal/adapters/ingest/tracefile"
	"gasanalysis/internal/core/table"
	"gasanalysis/internal/services/traces/domain"
)

// readerFactory adapts tracefile.NewReader to the domain.ReaderFactory
type readerFactory struct{ maxLine int }

// NewReaderFactory returns a factory that wraps tracefile.NewReader
func NewReaderFactory(maxLine int) domain.ReaderFactory { return readerFactory{maxLine: maxLine} }

func (f readerFactory) New(rc io.ReadCloser) (domain.ReaderPort, error) {
	r, err := tracefile.NewReader(rc, f.maxLine)
	if err != nil {
		return nil, err
	}
	return r, nil
}

type decoder struct{}

// NewDecoder returns a decoder backed by tracefile.Flatten
func NewDecoder() domain.Decoder { return decoder{} }

func (decoder) Decode(line []byte) ([]table.Field, error) { return tracefile.Flatten(line) }
