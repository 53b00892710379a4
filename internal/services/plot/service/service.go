// Package service filters loaded trace tables, fits per-group regressions and hands
// the resulting charts to a renderer
package service

import (
	"context"
	"io"
	"sort"
	"text/tabwriter"

	"gasanalysis/internal/core/regress"
	"gasanalysis/internal/core/table"
	perr "gasanalysis/internal/platform/errors"
	"gasanalysis/internal/platform/logger"
	"gasanalysis/internal/services/plot/domain"
	tracedom "gasanalysis/internal/services/traces/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Service implements domain.PlotterPort
type Service struct {
	Render domain.Renderer
}

// New constructs the plot service
func New(r domain.Renderer) *Service {
	if r == nil {
		panic("plot.Service requires a renderer")
	}
	return &Service{Render: r}
}

// Memory plots memory allocated against gas used
func (s *Service) Memory(ctx context.Context, t *table.Table, o domain.MemoryOptions) (string, error) {
	return s.plot(ctx, t, memoryView(o), o.Output, o.Start, o.Stop)
}

// CPU plots clock time against gas used
func (s *Service) CPU(ctx context.Context, t *table.Table, o domain.CPUOptions) (string, error) {
	return s.plot(ctx, t, cpuView(o), o.Output, o.Start, o.Stop)
}

// Combined plots the first principal component of memory and clock time against gas used
func (s *Service) Combined(ctx context.Context, t *table.Table, o domain.CombinedOptions) (string, error) {
	return s.plot(ctx, t, combinedView(o), o.Output, o.Start, o.Stop)
}

// plot resolves the output path before doing any work so a bad template fails fast
func (s *Service) plot(ctx context.Context, t *table.Table, v domain.View, output string, start, stop int) (string, error) {
	log := logger.C(ctx).With().Str("component", "plot").Str("view", v.Name).Logger()

	if output == "" {
		output = v.Template
	}
	path, err := FormatOutput(output, start, stop)
	if err != nil {
		return "", perr.WithOp(err, v.Name)
	}
	if t == nil || t.Len() == 0 {
		return "", perr.WithOp(perr.Renderf("no trace rows in window [%d, %d)", start, stop), v.Name)
	}

	chart, err := Build(t, v)
	if err != nil {
		return "", perr.WithOp(err, v.Name)
	}
	if chart.Points() == 0 {
		return "", perr.WithOp(perr.Renderf("no rows left to plot out of %d loaded", t.Len()), v.Name)
	}
	for _, sr := range chart.Series {
		ev := log.Debug().Str("group", groupName(sr)).Int("n", len(sr.X))
		if sr.HasFit {
			ev = ev.Float64("slope", sr.Fit.Slope).Float64("intercept", sr.Fit.Intercept).Float64("r2", sr.Fit.R2)
		}
		ev.Msg("fitted group")
	}

	if err := s.Render.Render(chart, path); err != nil {
		return "", perr.WithOp(perr.Wrapf(err, perr.ErrorCodeRender, "render %s", path), v.Name)
	}
	log.Info().Str("output", path).Int("points", chart.Points()).Int("groups", len(chart.Series)).Msg("wrote plot")
	return path, nil
}

// Build prepares t for view v and turns it into one series per group. Rows whose x or y
// is not numeric are left out, as are rows with a null group value
func Build(t *table.Table, v domain.View) (domain.Chart, error) {
	if v.Prepare != nil {
		var err error
		if t, err = v.Prepare(t); err != nil {
			return domain.Chart{}, err
		}
	}
	xs, err := t.MustColumn(v.X)
	if err != nil {
		return domain.Chart{}, err
	}
	ys, err := t.MustColumn(v.Y)
	if err != nil {
		return domain.Chart{}, err
	}

	group := ""
	switch {
	case t.Has(tracedom.ColType):
		group = tracedom.ColType
	case v.Fallback != "":
		group = v.Fallback
	}

	var (
		series []domain.Series
		keys   []table.Value
		index  = map[string]int{}
	)
	for r := 0; r < t.Len(); r++ {
		x, okx := xs[r].Float64()
		y, oky := ys[r].Float64()
		if !okx || !oky {
			continue
		}
		key := table.Null
		if group != "" {
			if key = t.At(r, group); key.IsNull() {
				continue
			}
		}
		name := key.Text()
		i, ok := index[name]
		if !ok {
			i = len(series)
			index[name] = i
			series = append(series, domain.Series{Name: name})
			keys = append(keys, key)
		}
		series[i].X = append(series[i].X, x)
		series[i].Y = append(series[i].Y, y)
	}

	// boolean groups read false then true; everything else keeps first appearance
	if allBool(keys) {
		sort.SliceStable(series, func(a, b int) bool { return !keys[a].B && keys[b].B })
	}
	for i := range series {
		series[i].Fit, series[i].HasFit = regress.Linear(series[i].X, series[i].Y)
	}

	return domain.Chart{
		Group:  group,
		XLabel: v.XLabel,
		YLabel: v.YLabel,
		Series: series,
	}, nil
}

func allBool(keys []table.Value) bool {
	if len(keys) < 2 {
		return false
	}
	for _, k := range keys {
		if k.Kind != table.KindBool {
			return false
		}
	}
	return true
}

func groupName(s domain.Series) string {
	if s.Name == "" {
		return "all"
	}
	return s.Name
}

// Summary prints the fitted line of every group for the memory and cpu views
func (s *Service) Summary(ctx context.Context, w io.Writer, t *table.Table, o domain.SummaryOptions) error {
	if t == nil || t.Len() == 0 {
		return perr.WithOp(perr.Renderf("no trace rows to summarize"), "summary")
	}
	views := []domain.View{
		memoryView(domain.MemoryOptions{MaxMemory: o.MaxMemory, MemoryThreshold: o.MemoryThreshold}),
		cpuView(domain.CPUOptions{IncludeDoS: o.IncludeDoS}),
	}

	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := p.Fprintf(tw, "view\tgroup\tn\tslope\tintercept\tr2\n"); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "write summary")
	}
	for _, v := range views {
		chart, err := Build(t, v)
		if err != nil {
			return perr.WithOp(err, "summary")
		}
		for _, sr := range chart.Series {
			if !sr.HasFit {
				_, err = p.Fprintf(tw, "%s\t%s\t%d\t-\t-\t-\n", v.Name, groupName(sr), len(sr.X))
			} else {
				_, err = p.Fprintf(tw, "%s\t%s\t%d\t%.6g\t%.6g\t%.4f\n",
					v.Name, groupName(sr), len(sr.X), sr.Fit.Slope, sr.Fit.Intercept, sr.Fit.R2)
			}
			if err != nil {
				return perr.Wrap(err, perr.ErrorCodeIO, "write summary")
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "write summary")
	}
	logger.C(ctx).Info().Int("rows", t.Len()).Msg("wrote summary")
	return nil
}
