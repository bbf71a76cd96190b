package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hmiko/untitled/internal/config"
	"github.com/hmiko/untitled/internal/logging"
	"github.com/hmiko/untitled/internal/nativemsg"
	"github.com/hmiko/untitled/internal/x11"
)

// setup loads the configuration and opens the debug logger. Flag values
// override the config file; closeLog must be called before exit.
func setup(procName string, debug bool) (cfg *config.Config, logger *slog.Logger, closeLog func(), err error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get paths: %w", err)
	}

	cfg, err = config.Load(paths.Config, paths)
	if err != nil {
		return nil, nil, nil, err
	}
	if procName != "" {
		cfg.ProcessName = procName
	}
	if debug {
		cfg.Log.Enabled = true
	}

	logger, closeLog = newLogger(cfg)
	return cfg, logger, closeLog, nil
}

// newLogger opens the rotating debug log when enabled. The log must never
// break the request path, so the disabled case is a discard logger and
// write failures stay inside lumberjack.
func newLogger(cfg *config.Config) (*slog.Logger, func()) {
	if !cfg.Log.Enabled {
		return logging.Discard(), func() {}
	}
	w := logging.NewRotatingWriter(logging.DefaultConfig(cfg.Log.Path))
	return logging.NewLogger(w), func() { w.Close() }
}

// mapHostError converts host errors to exit-coded errors at the CLI edge.
func mapHostError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, nativemsg.ErrMalformed):
		return errProtocol(err)
	case errors.Is(err, x11.ErrToolNotFound):
		return errToolNotFound(err)
	default:
		return err
	}
}
