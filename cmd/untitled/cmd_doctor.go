package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hmiko/untitled/internal/manifest"
	"github.com/hmiko/untitled/internal/ui"
	"github.com/hmiko/untitled/internal/x11"
)

type DoctorCmd struct {
	Browser string `help:"Browser to check the manifest for" default:"firefox" enum:"firefox,librewolf" predictor:"browser"`
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

func (c *DoctorCmd) Run() error {
	ok := true

	tools := []struct{ name, purpose string }{
		{x11.PIDLookupTool, "process lookup"},
		{x11.WindowListTool, "window listing"},
		{x11.PropertyTool, "decoration hints"},
	}
	for _, tool := range tools {
		label := fmt.Sprintf("%s (%s)", tool.name, tool.purpose)
		path, err := lookPath(tool.name)
		if err != nil {
			ui.PrintCheck(label, false, "")
			ok = false
			continue
		}
		ui.PrintCheck(label, true, path)
	}

	display := os.Getenv("DISPLAY")
	ui.PrintCheck("DISPLAY", display != "", display)
	if display == "" {
		ok = false
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	manifestPath, err := manifest.Path(c.Browser, home)
	if err != nil {
		return err
	}
	_, statErr := os.Stat(manifestPath)
	ui.PrintCheck(c.Browser+" manifest", statErr == nil, manifestPath)
	if statErr != nil {
		ok = false
	}

	if !ok {
		return &ExitError{Code: exitError, Message: "environment is not ready"}
	}
	ui.PrintSuccess("All checks passed")
	return nil
}
