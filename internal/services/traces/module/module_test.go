package module

import (
	"testing"
	"time"

	"gasanalysis/internal/adapters/ingest/tracefile"
	"gasanalysis/internal/modkit"
	modpkg "gasanalysis/internal/modkit/module"
	"gasanalysis/internal/platform/config"
	"gasanalysis/internal/services/traces/domain"
)

func TestFromConfig(t *testing.T) {
	o := FromConfig(config.New())
	if o.MaxLineBytes != tracefile.DefaultMaxLineBytes || o.HTTPTimeout != 5*time.Minute {
		t.Fatalf("defaults mismatch: %+v", o)
	}

	t.Setenv("ANALYZE_MAX_LINE_BYTES", "1024")
	t.Setenv("ANALYZE_HTTP_TIMEOUT", "30s")
	o = FromConfig(config.New())
	if o.MaxLineBytes != 1024 || o.HTTPTimeout != 30*time.Second {
		t.Fatalf("env mismatch: %+v", o)
	}
}

func TestNew_ExposesLoader(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New()})
	if m.Name() != "traces" {
		t.Fatalf("name = %q", m.Name())
	}
	if _, ok := modpkg.PortsOf[domain.LoaderPort](m); !ok {
		t.Fatalf("loader port not exposed")
	}
}
