package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gasanalysis/internal/core/version"
	"gasanalysis/internal/modkit"
	"gasanalysis/internal/modkit/module"
	"gasanalysis/internal/platform/config"
	perr "gasanalysis/internal/platform/errors"
	"gasanalysis/internal/platform/logger"
	"gasanalysis/internal/platform/validate"

	plotdom "gasanalysis/internal/services/plot/domain"
	plotmod "gasanalysis/internal/services/plot/module"
	tracedom "gasanalysis/internal/services/traces/domain"
	tracemod "gasanalysis/internal/services/traces/module"

	"github.com/google/uuid"
)

const usageText = `usage: analyze-transactions {memory|cpu|combined|summary} INPUT... [flags]

  memory    plot memory allocated against gas used
  cpu       plot clock time against gas used
  combined  plot the first principal component of memory and clock time against gas used
  summary   print the fitted line of every group for the memory and cpu plots
  version   print the build version

INPUT is a gzip compressed JSON lines trace file or an http(s) URL.
Run "analyze-transactions <command> -h" for the flags of a command.
`

// command is one parsed invocation
type command struct {
	Name string `flag:"command" validate:"oneof=memory cpu combined summary"`

	Inputs []string `flag:"INPUT" validate:"min=1,dive,required"`
	Output string   `flag:"output" validate:"omitempty,image_ext"`
	Start  int      `flag:"start" validate:"gte=0"`
	Stop   int      `flag:"stop" validate:"gte=0"`

	MaxMemory       *int64 `flag:"max-memory"`
	MemoryThreshold int64  `flag:"memory-threshold"`
	IncludeDoS      bool   `flag:"include-dos"`
}

// seams
var (
	newRunID  = uuid.NewString
	buildDeps = func() modkit.Deps { return modkit.Deps{Log: *logger.Get(), Cfg: config.New()} }
)

// run executes one invocation and returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && (args[0] == "version" || args[0] == "--version") {
		_, _ = fmt.Fprintln(stdout, version.Info())
		return 0
	}
	deps := buildDeps()
	cmd, err := parseArgs(args, deps.Cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "analyze-transactions: %v\n\n%s", err, usageText)
		return perr.ExitStatus(err)
	}

	ctx = logger.WithRun(ctx, newRunID())
	log := logger.C(ctx)

	tm := tracemod.New(deps)
	pm := plotmod.New(deps)
	loader := module.MustPortsOf[tracedom.LoaderPort](tm)
	plotter := module.MustPortsOf[plotdom.PlotterPort](pm)

	log.Debug().Str("command", cmd.Name).Strs("inputs", cmd.Inputs).Int("start", cmd.Start).Int("stop", cmd.Stop).Msg("starting")
	if err := execute(ctx, cmd, loader, plotter, stdout); err != nil {
		ev := log.Error().Err(err).Str("command", cmd.Name).Str("code", perr.CodeOf(err).String())
		if f := perr.FieldOf(err); f != "" {
			ev = ev.Str("column", f)
		}
		ev.Msg("analyze-transactions failed")
		return perr.ExitStatus(err)
	}
	return 0
}

// execute loads every input with the shared window and dispatches to the plotter
func execute(ctx context.Context, c command, loader tracedom.LoaderPort, plotter plotdom.PlotterPort, stdout io.Writer) error {
	tbl, err := loader.Combine(ctx, c.Inputs, tracedom.Window{Start: c.Start, Stop: c.Stop})
	if err != nil {
		return err
	}
	switch c.Name {
	case "memory":
		_, err = plotter.Memory(ctx, tbl, plotdom.MemoryOptions{
			MaxMemory:       c.MaxMemory,
			MemoryThreshold: c.MemoryThreshold,
			Output:          c.Output,
			Start:           c.Start,
			Stop:            c.Stop,
		})
	case "cpu":
		_, err = plotter.CPU(ctx, tbl, plotdom.CPUOptions{
			IncludeDoS: c.IncludeDoS,
			Output:     c.Output,
			Start:      c.Start,
			Stop:       c.Stop,
		})
	case "combined":
		_, err = plotter.Combined(ctx, tbl, plotdom.CombinedOptions{
			IncludeDoS: c.IncludeDoS,
			Output:     c.Output,
			Start:      c.Start,
			Stop:       c.Stop,
		})
	case "summary":
		err = plotter.Summary(ctx, stdout, tbl, plotdom.SummaryOptions{
			MaxMemory:       c.MaxMemory,
			MemoryThreshold: c.MemoryThreshold,
			IncludeDoS:      c.IncludeDoS,
		})
	default:
		err = perr.Usagef("unknown command %q", c.Name)
	}
	return err
}

// parseArgs reads the subcommand, then its flags and inputs in any order.
// Flag defaults for the window and threshold come from ANALYZE_* variables
func parseArgs(args []string, cfg config.Conf, stderr io.Writer) (command, error) {
	var c command
	if len(args) == 0 {
		return c, perr.Usagef("missing command")
	}
	switch args[0] {
	case "-h", "-help", "--help", "help":
		_, _ = io.WriteString(stderr, usageText)
		return c, flag.ErrHelp
	}
	c.Name = args[0]
	if strings.HasPrefix(c.Name, "-") {
		return c, perr.Usagef("missing command before %s", c.Name)
	}

	an := cfg.Prefix("ANALYZE_")
	fs := flag.NewFlagSet("analyze-transactions "+c.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&c.Start, "start", an.MayInt("START", 1_000_000), "first line index to load")
	fs.IntVar(&c.Stop, "stop", an.MayInt("STOP", 1_500_000), "line index to stop loading at (exclusive)")

	var maxMemory int64
	switch c.Name {
	case "memory", "summary":
		fs.Int64Var(&maxMemory, "max-memory", 0, "drop rows allocating this many bytes or more")
		fs.Int64Var(&c.MemoryThreshold, "memory-threshold", an.MayInt64("MEMORY_THRESHOLD", plotdom.DefaultMemoryThreshold), "bytes above which a transaction is memory intensive")
	}
	switch c.Name {
	case "cpu", "combined", "summary":
		fs.BoolVar(&c.IncludeDoS, "include-dos", false, "keep transactions taking a second or more")
	}
	if c.Name != "summary" {
		fs.StringVar(&c.Output, "output", "", "output path template; {0} is start and {1} is stop")
	}

	rest := args[1:]
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return c, err
			}
			return c, perr.Wrap(err, perr.ErrorCodeUsage, "parse flags")
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		c.Inputs = append(c.Inputs, rest[0])
		rest = rest[1:]
	}
	// zero means no cap, same as leaving the flag out
	if maxMemory != 0 {
		c.MaxMemory = &maxMemory
	}

	if err := validate.Struct(c); err != nil {
		return c, err
	}
	return c, nil
}
