// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package logging builds the process-wide [slog.Logger].
//
// Production and staging emit JSON lines for the log collector. Development
// uses a coloured console handler so request logs stay readable in a terminal.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/taibuivan/kahasolusi/internal/platform/constants"
)

// Options controls handler selection.
type Options struct {
	Development bool
	Debug       bool
	Output      io.Writer
}

// New returns a logger tagged with the application name.
func New(opts Options) *slog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if opts.Development {
		handler = tint.NewHandler(output, &tint.Options{
			Level:      level,
			AddSource:  opts.Debug,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// Discard returns a logger that drops every record. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
