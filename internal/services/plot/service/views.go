package service

import (
	"gasanalysis/internal/core/regress"
	"gasanalysis/internal/core/table"
	perr "gasanalysis/internal/platform/errors"
	"gasanalysis/internal/services/plot/domain"
	tracedom "gasanalysis/internal/services/traces/domain"
)

const labelGasUsed = "Gas used"

// cmpInt compares a numeric cell with n; ok is false for nulls and non-numeric cells
func cmpInt(v table.Value, n int64) (c int, ok bool) {
	switch v.Kind {
	case table.KindInt:
		switch {
		case v.I64 < n:
			return -1, true
		case v.I64 > n:
			return 1, true
		}
		return 0, true
	case table.KindFloat:
		f, ok := v.Float64()
		if !ok {
			return 0, false
		}
		switch nf := float64(n); {
		case f < nf:
			return -1, true
		case f > nf:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func memoryView(o domain.MemoryOptions) domain.View {
	return domain.View{
		Name:     "memory",
		X:        tracedom.ColGasUsed,
		Y:        tracedom.ColMemory,
		XLabel:   labelGasUsed,
		YLabel:   "Memory allocated (B)",
		Template: domain.MemoryTemplate,
		Fallback: domain.ColMemoryIntensive,
		Prepare: func(t *table.Table) (*table.Table, error) {
			// rows under a non-zero max-memory with a non-negative allocation; nulls never survive either test
			out, err := t.Where(tracedom.ColMemory, func(v table.Value) bool {
				if c, ok := cmpInt(v, 0); !ok || c < 0 {
					return false
				}
				if o.MaxMemory != nil && *o.MaxMemory != 0 {
					c, _ := cmpInt(v, *o.MaxMemory)
					return c < 0
				}
				return true
			})
			if err != nil {
				return nil, err
			}
			mem, _ := out.Column(tracedom.ColMemory)
			flags := make([]table.Value, len(mem))
			for r, v := range mem {
				c, ok := cmpInt(v, o.MemoryThreshold)
				flags[r] = table.Bool(ok && c > 0)
			}
			if err := out.SetColumn(domain.ColMemoryIntensive, flags); err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

func cpuView(o domain.CPUOptions) domain.View {
	return domain.View{
		Name:     "cpu",
		X:        tracedom.ColGasUsed,
		Y:        tracedom.ColClockTime,
		XLabel:   labelGasUsed,
		YLabel:   "Clock time (s)",
		Template: domain.CPUTemplate,
		Prepare: func(t *table.Table) (*table.Table, error) {
			if o.IncludeDoS {
				return t, nil
			}
			return t.Where(tracedom.ColClockTime, belowDoS)
		},
	}
}

func combinedView(o domain.CombinedOptions) domain.View {
	return domain.View{
		Name:     "combined",
		X:        tracedom.ColGasUsed,
		Y:        domain.ColCombinedUsage,
		XLabel:   labelGasUsed,
		YLabel:   "Combined resource usage (PC1)",
		Template: domain.CombinedTemplate,
		Prepare: func(t *table.Table) (*table.Table, error) {
			out, err := t.Where(tracedom.ColMemory, func(v table.Value) bool {
				c, ok := cmpInt(v, 0)
				return ok && c >= 0
			})
			if err != nil {
				return nil, err
			}
			out, err = out.Where(tracedom.ColClockTime, func(v table.Value) bool {
				if o.IncludeDoS {
					_, ok := v.Float64()
					return ok
				}
				return belowDoS(v)
			})
			if err != nil {
				return nil, err
			}
			if out.Len() < 2 {
				return nil, perr.Renderf("combined usage needs at least 2 rows with memory and clock time, got %d", out.Len())
			}
			mem, _ := out.Column(tracedom.ColMemory)
			clock, _ := out.Column(tracedom.ColClockTime)
			score, err := regress.FirstComponent(floatsOf(mem), floatsOf(clock))
			if err != nil {
				return nil, err
			}
			vals := make([]table.Value, len(score))
			for i, s := range score {
				vals[i] = table.Float(s)
			}
			if err := out.SetColumn(domain.ColCombinedUsage, vals); err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// belowDoS keeps numeric clock times under the DoS cutoff
func belowDoS(v table.Value) bool {
	f, ok := v.Float64()
	return ok && f < domain.DoSClockTime
}

// floatsOf converts cells already known to be numeric
func floatsOf(vals []table.Value) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i], _ = v.Float64()
	}
	return out
}
