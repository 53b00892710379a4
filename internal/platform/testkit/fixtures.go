package testkit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// WriteGzipLines writes lines joined by newlines into dir/name as a gzip file and returns its path
func WriteGzipLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture %s: %v", path, err)
	}
	zw := gzip.NewWriter(f)
	for _, l := range lines {
		if _, err := zw.Write([]byte(l + "\n")); err != nil {
			t.Fatalf("write fixture %s: %v", path, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture %s: %v", path, err)
	}
	return path
}

// WriteGzipRecords marshals each record as one JSON line and writes them like WriteGzipLines
func WriteGzipRecords(t *testing.T, dir, name string, recs ...any) string {
	t.Helper()
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("marshal fixture record: %v", err)
		}
		lines = append(lines, string(b))
	}
	return WriteGzipLines(t, dir, name, lines...)
}

// TraceRecord builds a nested trace record the way the tracer emits them
func TraceRecord(gasUsed int64, memory int64, clock float64) map[string]any {
	return map[string]any{
		"transaction": map[string]any{
			"gas":             gasUsed + 21000,
			"gas_for_deposit": 0,
			"gas_refunded":    0,
			"gas_used":        gasUsed,
		},
		"usage": map[string]any{
			"extra_memory_allocated": memory,
			"clock_time":             clock,
		},
	}
}
