// Package domain holds the trace loading contract: windows, well-known columns and ports
package domain

import (
	"gasanalysis/internal/adapters/ingest/tracefile"
)

// Line re-exports the raw line shape produced by the trace reader
type Line = tracefile.Line

// Well-known flattened column names
const (
	ColGas           = "transaction.gas"
	ColGasForDeposit = "transaction.gas_for_deposit"
	ColGasRefunded   = "transaction.gas_refunded"
	ColGasUsed       = "transaction.gas_used"

	ColMemory    = "usage.extra_memory_allocated"
	ColClockTime = "usage.clock_time"

	// ColType labels rows with their source file when several inputs are combined
	ColType = "type"
)

// CastColumns are coerced to int64 after every load
var CastColumns = []string{ColGas, ColGasForDeposit, ColGasRefunded, ColGasUsed}

// Window selects lines [Start, Stop) of a trace file by 0-based line index
type Window struct {
	Start int
	Stop  int
}

// Contains reports whether line index i is inside the window
func (w Window) Contains(i int) bool { return i >= w.Start && i < w.Stop }

// Done reports whether reading can stop before line index i
func (w Window) Done(i int) bool { return i >= w.Stop }
