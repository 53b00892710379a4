package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gasanalysis/internal/platform/config"
	perr "gasanalysis/internal/platform/errors"
	"gasanalysis/internal/platform/testkit"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (command, error) {
	t.Helper()
	var stderr bytes.Buffer
	return parseArgs(args, config.New(), &stderr)
}

func TestParseArgs_InterleavedFlagsAndInputs(t *testing.T) {
	c, err := parse(t, "memory", "a.jsonl.gz", "--start", "0", "b.jsonl.gz", "--max-memory", "500", "--stop", "10")
	require.NoError(t, err)
	require.Equal(t, "memory", c.Name)
	require.Equal(t, []string{"a.jsonl.gz", "b.jsonl.gz"}, c.Inputs)
	require.Equal(t, 0, c.Start)
	require.Equal(t, 10, c.Stop)
	require.NotNil(t, c.MaxMemory)
	require.Equal(t, int64(500), *c.MaxMemory)
	require.Equal(t, int64(300_000), c.MemoryThreshold)
}

func TestParseArgs_ZeroMaxMemoryMeansNoCap(t *testing.T) {
	c, err := parse(t, "memory", "--max-memory", "0", "a.jsonl.gz")
	require.NoError(t, err)
	require.Nil(t, c.MaxMemory)

	c, err = parse(t, "summary", "--max-memory=-1", "a.jsonl.gz")
	require.NoError(t, err)
	require.NotNil(t, c.MaxMemory)
	require.Equal(t, int64(-1), *c.MaxMemory)
}

func TestParseArgs_Defaults(t *testing.T) {
	c, err := parse(t, "cpu", "a.gz")
	require.NoError(t, err)
	require.Equal(t, 1_000_000, c.Start)
	require.Equal(t, 1_500_000, c.Stop)
	require.False(t, c.IncludeDoS)
	require.Nil(t, c.MaxMemory)
	require.Empty(t, c.Output)

	c, err = parse(t, "cpu", "--include-dos", "a.gz")
	require.NoError(t, err)
	require.True(t, c.IncludeDoS)
}

func TestParseArgs_DefaultsFromEnv(t *testing.T) {
	t.Setenv("ANALYZE_START", "7")
	t.Setenv("ANALYZE_STOP", "70")
	t.Setenv("ANALYZE_MEMORY_THRESHOLD", "1_000")
	c, err := parse(t, "memory", "a.gz")
	require.NoError(t, err)
	require.Equal(t, 7, c.Start)
	require.Equal(t, 70, c.Stop)
	require.Equal(t, int64(1000), c.MemoryThreshold)
}

func TestParseArgs_UsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"flag before command", []string{"--start", "1", "memory", "a.gz"}},
		{"unknown command", []string{"disk", "a.gz"}},
		{"no inputs", []string{"memory", "--start", "1"}},
		{"negative start", []string{"cpu", "a.gz", "--start", "-1"}},
		{"negative stop", []string{"cpu", "a.gz", "--stop", "-5"}},
		{"memory flag on cpu", []string{"cpu", "a.gz", "--max-memory", "5"}},
		{"dos flag on memory", []string{"memory", "a.gz", "--include-dos"}},
		{"bad number", []string{"memory", "a.gz", "--memory-threshold", "lots"}},
		{"unsupported output", []string{"memory", "a.gz", "--output", "out.txt"}},
		{"output on summary", []string{"summary", "a.gz", "--output", "out.pdf"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parse(t, c.args...)
			require.Error(t, err)
			require.True(t, perr.IsCode(err, perr.ErrorCodeUsage), "got %v", err)
			require.Equal(t, 2, perr.ExitStatus(err))
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	_, err := parse(t, "--help")
	require.True(t, errors.Is(err, flag.ErrHelp))
	_, err = parse(t, "memory", "-h")
	require.True(t, errors.Is(err, flag.ErrHelp))
}

func fixture(t *testing.T, dir string) string {
	t.Helper()
	recs := make([]any, 0, 4)
	for i := 0; i < 4; i++ {
		recs = append(recs, testkit.TraceRecord(int64(1000*(i+1)), int64(100*i), 0.1*float64(i+1)))
	}
	return testkit.WriteGzipRecords(t, dir, "trace.jsonl.gz", recs...)
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	testkit.Swap(t, &newRunID, func() string { return "test-run" })
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_MemoryPlot(t *testing.T) {
	dir := t.TempDir()
	in := fixture(t, dir)
	tmpl := filepath.Join(dir, "memory-{0}-{1}.svg")

	code, _, _ := runCLI(t, "memory", in, "--start", "0", "--stop", "4", "--memory-threshold", "150", "--output", tmpl)
	require.Equal(t, 0, code)
	st, err := os.Stat(filepath.Join(dir, "memory-0-4.svg"))
	require.NoError(t, err)
	require.Positive(t, st.Size())
}

func TestRun_CombinedInputsCPU(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir)
	b := testkit.WriteGzipRecords(t, dir, "other.jsonl.gz",
		testkit.TraceRecord(500, 10, 0.05), testkit.TraceRecord(900, 20, 3.5))
	out := filepath.Join(dir, "cpu.svg")

	code, _, _ := runCLI(t, "cpu", a, b, "--start", "0", "--stop", "10", "--output", out)
	require.Equal(t, 0, code)
	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestRun_Summary(t *testing.T) {
	dir := t.TempDir()
	in := fixture(t, dir)
	code, stdout, _ := runCLI(t, "summary", in, "--start", "0", "--stop", "4")
	require.Equal(t, 0, code)
	testkit.MustContain(t, stdout, "memory")
	testkit.MustContain(t, stdout, "cpu")
}

func TestRun_CoercionFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := testkit.WriteGzipLines(t, dir, "bad.jsonl.gz",
		`{"transaction":{"gas":"abc","gas_for_deposit":0,"gas_refunded":0,"gas_used":1},"usage":{"extra_memory_allocated":1,"clock_time":0.1}}`)
	out := filepath.Join(dir, "never.pdf")

	code, _, _ := runCLI(t, "memory", in, "--start", "0", "--stop", "1", "--output", out)
	require.Equal(t, 1, code)
	_, err := os.Stat(out)
	require.True(t, os.IsNotExist(err))
}

func TestRun_ExitCodes(t *testing.T) {
	code, _, stderr := runCLI(t)
	require.Equal(t, 2, code)
	testkit.MustContain(t, stderr, "usage: analyze-transactions")

	code, _, _ = runCLI(t, "cpu", filepath.Join(t.TempDir(), "missing.jsonl.gz"), "--start", "0", "--stop", "1")
	require.Equal(t, 1, code)

	code, _, _ = runCLI(t, "help")
	require.Equal(t, 0, code)

	code, stdout, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	testkit.MustContain(t, stdout, "analyze-transactions dev")
}

func TestRun_MissingOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	in := fixture(t, dir)
	out := filepath.Join(dir, "plots", fmt.Sprintf("cpu-%d.pdf", 1))
	code, _, _ := runCLI(t, "cpu", in, "--start", "0", "--stop", "4", "--output", out)
	require.Equal(t, 1, code)
}
