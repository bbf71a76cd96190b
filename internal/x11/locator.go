package x11

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ErrToolNotFound indicates a required external tool is not installed.
// Distinct from a tool running and reporting nothing: a missing
// executable is a broken host environment, not an empty result.
var ErrToolNotFound = errors.New("tool not found")

// External tools the package shells out to.
const (
	PIDLookupTool  = "pidof"
	WindowListTool = "wmctrl"
	PropertyTool   = "xprop"
)

// runner abstracts external command execution so tests can substitute
// deterministic fakes.
type runner interface {
	// Output runs the command and returns its stdout. Stderr is discarded.
	Output(name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Locator resolves a process name to the windows it owns.
type Locator struct {
	run runner
}

// NewLocator creates a locator backed by the real external tools.
func NewLocator() *Locator {
	return &Locator{run: execRunner{}}
}

// FindWindows returns the named process's windows in window-list order.
// Each call re-invokes the external tools; window handles are never
// cached because they go stale as windows close.
//
// A process that is not running, a discovery tool exiting non-zero, or
// undecodable tool output all degrade to an empty result. Only a missing
// executable is reported as an error.
func (l *Locator) FindWindows(procName string) ([]Window, error) {
	pids, err := l.pids(procName)
	if err != nil {
		return nil, err
	}

	all, err := l.windows()
	if err != nil {
		return nil, err
	}

	var owned []Window
	for _, w := range all {
		if lo.Contains(pids, w.PID) {
			owned = append(owned, w)
		}
	}
	return owned, nil
}

// pids returns the PIDs of the named process, empty if it is not running.
// Tokens that do not parse as integers are skipped.
func (l *Locator) pids(procName string) ([]int, error) {
	out, err := l.output(PIDLookupTool, procName)
	if err != nil {
		return nil, err
	}

	var pids []int
	for _, token := range strings.Fields(string(out)) {
		pid, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

// windows returns every window the window manager reports. A line that
// does not parse is skipped; partial corruption of the listing must not
// abort enumeration of the rest.
func (l *Locator) windows() ([]Window, error) {
	out, err := l.output(WindowListTool, "-lp")
	if err != nil {
		return nil, err
	}

	var windows []Window
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w, err := parseWindow(line)
		if err != nil {
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// output runs a discovery tool and translates its failure modes: a
// missing executable is an error, while a non-zero exit or non-UTF-8
// output yields empty output.
func (l *Locator) output(name string, args ...string) ([]byte, error) {
	out, err := l.run.Output(name, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
		}
		return nil, nil
	}
	if !utf8.Valid(out) {
		return nil, nil
	}
	return out, nil
}
