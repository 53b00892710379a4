package config

import (
	"testing"
	"time"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	an := root.Prefix("ANALYZE_")
	if got := an.key("START"); got != "ANALYZE_START" {
		t.Fatalf("key() = %q, want %q", got, "ANALYZE_START")
	}
	nested := an.Prefix("PLOT_")
	if got := nested.key("WIDTH_IN"); got != "ANALYZE_PLOT_WIDTH_IN" {
		t.Fatalf("nested key() = %q, want %q", got, "ANALYZE_PLOT_WIDTH_IN")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("A_")
	t.Setenv("A_START", " 10 ")
	t.Setenv("A_BAD", "ten")
	if got := c.MayInt("START", 1); got != 10 {
		t.Fatalf("MayInt = %d, want 10", got)
	}
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt(bad) = %d, want 3", got)
	}
	if got := c.MayInt("MISSING", 4); got != 4 {
		t.Fatalf("MayInt(missing) = %d, want 4", got)
	}
}

func TestMayInt64(t *testing.T) {
	c := New().Prefix("A_")
	t.Setenv("A_THRESHOLD", "300_000")
	t.Setenv("A_NEG", "-5")
	t.Setenv("A_BAD", "1e3")
	if got := c.MayInt64("THRESHOLD", 0); got != 300000 {
		t.Fatalf("MayInt64 = %d, want 300000", got)
	}
	if got := c.MayInt64("NEG", 0); got != -5 {
		t.Fatalf("MayInt64(neg) = %d, want -5", got)
	}
	if got := c.MayInt64("BAD", 7); got != 7 {
		t.Fatalf("MayInt64(bad) = %d, want 7", got)
	}
}

func TestMayFloat64(t *testing.T) {
	c := New().Prefix("A_")
	t.Setenv("A_W", "6.5")
	t.Setenv("A_BAD", "wide")
	if got := c.MayFloat64("W", 1); got != 6.5 {
		t.Fatalf("MayFloat64 = %v, want 6.5", got)
	}
	if got := c.MayFloat64("BAD", 2); got != 2 {
		t.Fatalf("MayFloat64(bad) = %v, want 2", got)
	}
	if got := c.MayFloat64("MISSING", 3); got != 3 {
		t.Fatalf("MayFloat64(missing) = %v, want 3", got)
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("A_")
	t.Setenv("A_TO", "90s")
	t.Setenv("A_BAD", "soon")
	if got := c.MayDuration("TO", time.Second); got != 90*time.Second {
		t.Fatalf("MayDuration = %v, want 90s", got)
	}
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration(bad) = %v, want 1m", got)
	}
}
