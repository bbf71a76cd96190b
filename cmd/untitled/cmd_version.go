package main

import (
	"fmt"

	"github.com/hmiko/untitled/internal/ui"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	ui.PrintInfo(fmt.Sprintf("untitled version %s", version))
	return nil
}
