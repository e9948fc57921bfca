// Package exdecode compiles instruction decode tables authored in xlsx
// workbooks into signal models.
package exdecode

import (
	"log/slog"
	"slices"
)

// Options configures compilation.
type Options struct {
	// Sheets limits compilation to the named sheets, kept in workbook order.
	// If empty, every sheet is compiled.
	Sheets []string
	// IncludeTables specifies whether per-table reports are kept in the result.
	// If nil, defaults to true.
	IncludeTables *bool
	// Logger receives debug output from the compiler.
	// If nil, output is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default compilation options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldCompileSheet returns whether the named sheet is selected.
func (o Options) ShouldCompileSheet(name string) bool {
	return len(o.Sheets) == 0 || slices.Contains(o.Sheets, name)
}

// ShouldIncludeTables returns whether per-table reports are kept.
func (o Options) ShouldIncludeTables() bool {
	if o.IncludeTables != nil {
		return *o.IncludeTables
	}
	return true
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
