package main

import (
	"os"

	"github.com/hmiko/untitled/internal/host"
	"github.com/hmiko/untitled/internal/nativemsg"
	"github.com/hmiko/untitled/internal/x11"
)

type HostCmd struct {
	// Browsers launch the host with positional arguments (on Linux the
	// manifest path and the extension ID or origin); they carry no
	// information the request does not, so they are accepted and ignored.
	BrowserArgs []string `arg:"" optional:"" name:"browser-args" help:"Arguments passed by the browser; ignored"`

	ProcName string `help:"Process whose windows are decorated (default from config)" placeholder:"NAME"`
	Debug    bool   `help:"Write the debug log even if the config leaves it disabled"`
}

func (c *HostCmd) Run() error {
	cfg, logger, closeLog, err := setup(c.ProcName, c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("starting", "mode", "host", "process", cfg.ProcessName)

	h := host.New(
		nativemsg.New(os.Stdin, os.Stdout),
		x11.NewLocator(),
		x11.NewDecorator(),
		logger,
		cfg.ProcessName,
	)
	return mapHostError(h.Run())
}
