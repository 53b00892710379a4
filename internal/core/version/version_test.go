package version

import "testing"

func TestInfo_Defaults(t *testing.T) {
	t.Parallel()
	got := Info().String()
	want := "analyze-transactions dev (commit none, built unknown)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
