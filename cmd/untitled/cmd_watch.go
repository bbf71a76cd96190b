package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hmiko/untitled/internal/host"
	"github.com/hmiko/untitled/internal/nativemsg"
	"github.com/hmiko/untitled/internal/x11"
)

type WatchCmd struct {
	// Accepted and ignored, as on HostCmd, so a manifest may point at a
	// wrapper script that forwards the browser's arguments to watch mode.
	BrowserArgs []string `arg:"" optional:"" name:"browser-args" help:"Arguments passed by the browser; ignored"`

	ProcName string        `help:"Process whose windows are decorated (default from config)" placeholder:"NAME"`
	Interval time.Duration `help:"Re-apply interval (default from config)" placeholder:"DURATION"`
	Debug    bool          `help:"Write the debug log even if the config leaves it disabled"`
}

func (c *WatchCmd) Run() error {
	cfg, logger, closeLog, err := setup(c.ProcName, c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	interval := cfg.Interval()
	if c.Interval > 0 {
		interval = c.Interval
	}
	logger.Debug("starting", "mode", "watch", "process", cfg.ProcessName, "interval", interval)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	h := host.New(
		nativemsg.New(os.Stdin, os.Stdout),
		x11.NewLocator(),
		x11.NewDecorator(),
		logger,
		cfg.ProcessName,
	)
	return mapHostError(h.Watch(ctx, interval))
}
