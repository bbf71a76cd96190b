package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lithammer/dedent"
	"github.com/willabides/kongplete"
)

var version = "dev"

type CLI struct {
	Host      HostCmd      `cmd:"" default:"withargs" help:"Serve one native-messaging request on stdin/stdout (default)"`
	Watch     WatchCmd     `cmd:"" help:"Serve one request, then keep re-applying the decoration"`
	Install   InstallCmd   `cmd:"" help:"Install the native-messaging host manifest"`
	Uninstall UninstallCmd `cmd:"" help:"Remove the native-messaging host manifest"`
	Doctor    DoctorCmd    `cmd:"" help:"Check that the host environment is usable"`
	Version   VersionCmd   `cmd:"" help:"Show version"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

var description = dedent.Dedent(`
	Native-messaging host that hides or restores the title bar of the
	browser's windows. The browser launches the binary with its own
	positional arguments (manifest path, extension ID or origin); the
	request arrives length-prefixed on stdin and the reply leaves the
	same way on stdout.`)

// newParser builds the CLI parser. Separate from main so tests can parse
// argument vectors, in particular the ones browsers pass to the host.
func newParser(cli *CLI) *kong.Kong {
	parser := kong.Must(cli,
		kong.Name("untitled"),
		kong.Description(description),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("browser", browserPredictor()),
	)
	return parser
}

func main() {
	cli := CLI{}
	parser := newParser(&cli)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
