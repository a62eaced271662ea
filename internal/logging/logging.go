// Package logging configures the process-wide zap logger. The TUI owns the
// terminal, so log output goes to a file under the state directory instead of
// stderr; without --debug everything is discarded.
package logging

import (
	"go.uber.org/zap"

	"dashring/internal/dirs"
)

// Setup installs the global zap logger and returns a flush function. debug
// enables a development-encoded log written to the state dir.
func Setup(debug bool) (func(), error) {
	if !debug {
		zap.ReplaceGlobals(zap.NewNop())
		return func() {}, nil
	}

	path, err := dirs.LogFile()
	if err != nil {
		return nil, err
	}
	if err := dirs.EnsureAll(); err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return func() { _ = logger.Sync() }, nil
}

// L returns the global logger.
func L() *zap.Logger {
	return zap.L()
}
