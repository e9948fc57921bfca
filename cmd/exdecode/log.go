package main

import (
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/log"
)

// Logger returns a logfmt logger writing records at lvl and above to w.
func Logger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(log.LogfmtHandlerWithLevel(w, lvl))
}
