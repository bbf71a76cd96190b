// Package ui provides formatted output utilities for the CLI.
//
// Only human-facing commands may use this package; the host and watch
// commands keep stdout reserved for the framed native-messaging reply.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// PrintSuccess prints a green success message.
func PrintSuccess(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), msg)
}

// PrintInfo prints a plain informational message.
func PrintInfo(msg string) {
	fmt.Fprintln(Output, msg)
}

// PrintWarning prints a yellow warning message.
func PrintWarning(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("!"), msg)
}

// PrintError prints a red error message.
func PrintError(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), msg)
}

// PrintCheck prints one doctor check result with a pass/fail badge.
func PrintCheck(label string, ok bool, detail string) {
	badge := Green("ok")
	if !ok {
		badge = Red("missing")
	}
	if detail != "" {
		detail = " " + Dim(detail)
	}
	fmt.Fprintf(Output, "%-32s [%s]%s\n", label, badge, detail)
}
