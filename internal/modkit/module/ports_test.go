package module

import (
	"testing"

	kit "gasanalysis/internal/platform/testkit"
)

// LoaderPort is a tiny test interface that our Ports() payloads can implement
type LoaderPort interface {
	Rows() int
}

type loaderImpl struct{ n int }

func (l loaderImpl) Rows() int { return l.n }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string { return m.name }
func (m fakeModule) Ports() any   { return m.ports }

func TestPortsOf_NilPorts(t *testing.T) {
	t.Parallel()
	if _, ok := PortsOf[LoaderPort](fakeModule{name: "nil"}); ok {
		t.Fatalf("expected ok=false when Ports() is nil")
	}
}

func TestPortsOf_DirectInterfaceMatch(t *testing.T) {
	t.Parallel()
	m := fakeModule{name: "direct", ports: LoaderPort(loaderImpl{n: 42})}
	got, ok := PortsOf[LoaderPort](m)
	if !ok || got.Rows() != 42 {
		t.Fatalf("direct match failed: ok=%v", ok)
	}
}

func TestPortsOf_StructBundle(t *testing.T) {
	t.Parallel()
	type Ports struct {
		Loader LoaderPort
		hidden LoaderPort
		Count  int
	}
	m := fakeModule{name: "bundle", ports: Ports{Loader: loaderImpl{n: 7}, hidden: loaderImpl{n: 9}}}
	got, ok := PortsOf[LoaderPort](m)
	if !ok || got.Rows() != 7 {
		t.Fatalf("bundle lookup failed: ok=%v", ok)
	}

	pm := fakeModule{name: "ptr", ports: &Ports{Loader: loaderImpl{n: 3}}}
	got, ok = PortsOf[LoaderPort](pm)
	if !ok || got.Rows() != 3 {
		t.Fatalf("pointer bundle lookup failed: ok=%v", ok)
	}
}

func TestPortsOf_UnexportedIgnored(t *testing.T) {
	t.Parallel()
	type Ports struct {
		hidden LoaderPort
	}
	if _, ok := PortsOf[LoaderPort](fakeModule{name: "hidden", ports: Ports{hidden: loaderImpl{}}}); ok {
		t.Fatalf("unexported fields must be ignored")
	}
}

func TestMustPortsOf_Panics(t *testing.T) {
	t.Parallel()
	kit.MustPanic(t, func() { _ = MustPortsOf[LoaderPort](fakeModule{name: "empty", ports: 5}) })
}
