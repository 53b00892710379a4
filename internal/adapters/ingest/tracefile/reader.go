package tracefile

import (
	"bufio"
	"errors"
	"io"

	perr "gasanalysis/internal/platform/errors"

	"github.com/klauspost/compress/gzip"
)

const (
	// DefaultMaxLineBytes caps a single decompressed line
	DefaultMaxLineBytes = 32 * 1024 * 1024
	initialBufBytes     = 512 * 1024
)

// Line is one decompressed line and its 0-based position in the stream
type Line struct {
	Number int
	Bytes  []byte // valid until the next call to Next
}

// Reader streams lines from a gzip file
type Reader struct {
	r     io.ReadCloser
	gz    *gzip.Reader
	sc    *bufio.Scanner
	err   error
	lines int
	bytes int64
}

// NewReader wraps r; maxLine <= 0 selects DefaultMaxLineBytes.
// An empty stream is treated as a file with no lines
func NewReader(r io.ReadCloser, maxLine int) (*Reader, error) {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	gz, err := gzip.NewReader(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Reader{r: r, err: io.EOF}, nil
		}
		if cerr := r.Close(); cerr != nil {
			return nil, perr.Wrap(errors.Join(err, cerr), perr.ErrorCodeIO, "open gzip stream")
		}
		return nil, perr.Wrap(err, perr.ErrorCodeIO, "open gzip stream")
	}
	sc := bufio.NewScanner(gz)
	bufSize := initialBufBytes
	if bufSize > maxLine {
		bufSize = maxLine
	}
	sc.Buffer(make([]byte, bufSize), maxLine)
	return &Reader{r: r, gz: gz, sc: sc}, nil
}

// Next returns the next line, or io.EOF when the stream is exhausted
func (rd *Reader) Next() (Line, error) {
	if rd.err != nil {
		return Line{}, rd.err
	}
	if !rd.sc.Scan() {
		if err := rd.sc.Err(); err != nil {
			rd.err = perr.Wrapf(err, perr.ErrorCodeIO, "read line %d", rd.lines)
			return Line{}, rd.err
		}
		rd.err = io.EOF
		return Line{}, io.EOF
	}
	b := rd.sc.Bytes()
	ln := Line{Number: rd.lines, Bytes: b}
	rd.lines++
	rd.bytes += int64(len(b) + 1) // include newline
	return ln, nil
}

// Close closes the gzip stream and the underlying reader
func (rd *Reader) Close() error {
	var first error
	if rd.gz != nil {
		if err := rd.gz.Close(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
			first = err
		}
	}
	if rd.r != nil {
		if err := rd.r.Close(); err != nil && first == nil {
			first = err
		}
	}
	return perr.WrapIf(first, perr.ErrorCodeIO, "close trace stream")
}

// Stats returns the number of lines read and total uncompressed bytes so far
func (rd *Reader) Stats() (lines int, bytes int64) {
	return rd.lines, rd.bytes
}
