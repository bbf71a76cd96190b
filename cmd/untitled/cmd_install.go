package main

import (
	"fmt"
	"os"

	"github.com/hmiko/untitled/internal/manifest"
	"github.com/hmiko/untitled/internal/ui"
)

type InstallCmd struct {
	Browser    string   `help:"Browser to install the manifest for" default:"firefox" enum:"firefox,librewolf" predictor:"browser"`
	Extensions []string `help:"Extension IDs allowed to invoke the host" placeholder:"ID"`
	BinPath    string   `help:"Host binary path recorded in the manifest (defaults to this executable)" placeholder:"PATH"`
	DryRun     bool     `help:"Print the manifest instead of writing it"`
}

func (c *InstallCmd) Run() error {
	execPath := c.BinPath
	if execPath == "" {
		p, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locate executable: %w", err)
		}
		execPath = p
	}

	m := manifest.New(execPath, c.Extensions...)

	if c.DryRun {
		data, err := m.Render()
		if err != nil {
			return err
		}
		fmt.Fprint(ui.Output, string(data))
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path, err := m.Install(c.Browser, home)
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Manifest installed: %s", path))
	ui.PrintInfo(fmt.Sprintf("Host binary: %s", execPath))
	return nil
}

type UninstallCmd struct {
	Browser string `help:"Browser to remove the manifest for" default:"firefox" enum:"firefox,librewolf" predictor:"browser"`
}

func (c *UninstallCmd) Run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path, err := manifest.Uninstall(c.Browser, home)
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Manifest removed: %s", path))
	return nil
}
