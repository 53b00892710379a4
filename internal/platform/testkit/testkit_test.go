package testkit

import (
	"bufio"
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"
)

var swapTarget = func() string { return "orig" }

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, "alpha beta gamma", "beta")
}

func TestSwap_Restores(t *testing.T) {
	t.Run("swap-in-subtest", func(t *testing.T) {
		Swap(t, &swapTarget, func() string { return "swapped" })
		if got := swapTarget(); got != "swapped" {
			t.Fatalf("swap did not take effect, got %q", got)
		}
	})
	if got := swapTarget(); got != "orig" {
		t.Fatalf("swap did not restore, got %q", got)
	}
}

func TestWriteGzipRecords_RoundTrip(t *testing.T) {
	path := WriteGzipRecords(t, t.TempDir(), "t.jsonl.gz", TraceRecord(10, 5, 0.1), TraceRecord(20, 6, 0.2))

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip: %v", err)
	}
	sc := bufio.NewScanner(zr)
	n := 0
	for sc.Scan() {
		n++
	}
	if n != 2 {
		t.Fatalf("lines = %d, want 2", n)
	}
}
