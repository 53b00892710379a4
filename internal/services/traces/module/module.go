// Package module provides the traces module implementation
package module

import (
	"gasanalysis/internal/adapters/ingest/tracefile"
	"gasanalysis/internal/modkit"
	"gasanalysis/internal/services/traces/domain"
	"gasanalysis/internal/services/traces/ingest"
	"gasanalysis/internal/services/traces/service"
)

// Ports defines the traces module ports
type Ports struct {
	Loader domain.LoaderPort
}

// Module implements the traces module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the traces module, wiring the file/HTTP opener, the gzip line
// reader and the JSON flattener using config from deps.Cfg
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(
		tracefile.NewSourceOpener(opts.HTTPTimeout),
		ingest.NewReaderFactory(opts.MaxLineBytes),
		ingest.NewDecoder(),
	)

	m := &Module{deps: deps}
	m.ports = Ports{Loader: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "traces" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
