// Package service loads windows of trace files into tables and combines several inputs
package service

import (
	"context"
	"io"
	"time"

	"gasanalysis/internal/core/table"
	perr "gasanalysis/internal/platform/errors"
	"gasanalysis/internal/platform/logger"
	"gasanalysis/internal/services/traces/domain"
)

// cancelCheckEvery is how many lines pass between context checks
const cancelCheckEvery = 4096

// Service implements domain.LoaderPort
type Service struct {
	Open   domain.Opener
	Reader domain.ReaderFactory
	Decode domain.Decoder
}

// New constructs the traces service
func New(o domain.Opener, rf domain.ReaderFactory, d domain.Decoder) *Service {
	if o == nil || rf == nil || d == nil {
		panic("traces.Service requires an opener, a reader factory and a decoder")
	}
	return &Service{Open: o, Reader: rf, Decode: d}
}

// Load reads lines [w.Start, w.Stop) of the trace at location into a table and casts
// the gas columns to int64. Lines before the window are skipped undecoded and reading
// stops at w.Stop or at the end of the stream
func (s *Service) Load(ctx context.Context, location string, w domain.Window) (*table.Table, error) {
	ctx = logger.WithInput(ctx, location)
	log := logger.C(ctx).With().Str("component", "traces").Logger()
	log.Info().Int("start", w.Start).Int("stop", w.Stop).Msg("loading data")
	began := time.Now()

	rc, err := s.Open.Open(ctx, location)
	if err != nil {
		return nil, perr.WithOp(err, "load")
	}
	rd, err := s.Reader.New(rc)
	if err != nil {
		return nil, wrapLoad(err, "read %s", location)
	}
	defer func() {
		if cerr := rd.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("close trace reader")
		}
	}()

	tbl := table.New()
	for {
		ln, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapLoad(err, "read %s", location)
		}
		if w.Done(ln.Number) {
			break
		}
		if ln.Number%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeIO, "load %s cancelled at line %d", location, ln.Number)
			}
		}
		if !w.Contains(ln.Number) {
			continue
		}
		fields, err := s.Decode.Decode(ln.Bytes)
		if err != nil {
			return nil, wrapLoad(err, "decode %s line %d", location, ln.Number)
		}
		tbl.AppendRow(fields...)
	}

	// an empty window has no columns at all, so there is nothing to coerce
	if tbl.Len() > 0 {
		for _, col := range domain.CastColumns {
			if err := tbl.CastInt64(col); err != nil {
				return nil, wrapLoad(err, "load %s", location)
			}
		}
	}

	lines, bytes := rd.Stats()
	log.Info().
		Int("rows", tbl.Len()).
		Int("columns", len(tbl.Columns())).
		Int("lines_read", lines).
		Int64("bytes_uncompressed", bytes).
		Dur("elapsed", time.Since(began)).
		Msg("finished loading data")
	return tbl, nil
}

// Combine loads every location with the same window. A single location is returned as
// loaded; with several, each table gets a type column holding Basename(location) and
// the tables are stacked in argument order
func (s *Service) Combine(ctx context.Context, locations []string, w domain.Window) (*table.Table, error) {
	switch len(locations) {
	case 0:
		return nil, perr.Usagef("no input files given")
	case 1:
		return s.Load(ctx, locations[0], w)
	}
	parts := make([]*table.Table, 0, len(locations))
	for _, loc := range locations {
		t, err := s.Load(ctx, loc, w)
		if err != nil {
			return nil, err
		}
		t.Fill(domain.ColType, table.String(Basename(loc)))
		parts = append(parts, t)
	}
	out := table.Concat(parts...)
	logger.C(ctx).Info().Int("inputs", len(locations)).Int("rows", out.Len()).Msg("combined inputs")
	return out, nil
}

// wrapLoad adds location context while keeping the cause's code and column
func wrapLoad(err error, format string, a ...any) error {
	wrapped := perr.Wrapf(err, perr.CodeOf(err), format, a...)
	if f := perr.FieldOf(err); f != "" {
		wrapped = perr.WithField(wrapped, f)
	}
	return perr.WithOp(wrapped, "load")
}
