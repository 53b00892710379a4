// Package module implements the plot service module
package module

import (
	"gasanalysis/internal/adapters/render/gonumplot"
	"gasanalysis/internal/modkit"
	"gasanalysis/internal/services/plot/domain"
	"gasanalysis/internal/services/plot/service"
)

// Ports exposed by the plot module
type Ports struct {
	Plotter domain.PlotterPort
}

// Module implements the plot service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new plot module backed by the gonum renderer
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	svc := service.New(gonumplot.New(opts.WidthIn, opts.HeightIn))

	m := &Module{deps: deps}
	m.ports = Ports{Plotter: svc}
	return m
}

// Name satisfies module.Module
func (m *Module) Name() string { return "plot" }

// Ports satisfies module.Module
func (m *Module) Ports() any { return m.ports }
