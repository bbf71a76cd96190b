// Package x11 locates the top-level windows a process owns and applies
// window manager decoration hints to them, using the pidof, wmctrl and
// xprop command line tools.
package x11

import (
	"fmt"
	"strconv"
	"strings"
)

// Window is one top-level window from the window manager's client list.
type Window struct {
	ID      uint64 // opaque platform window handle
	Desktop int    // virtual desktop index, -1 means all desktops
	PID     int
	Machine string // hostname of the owning client
	Title   string
}

// parseWindow parses one line of `wmctrl -lp` output:
//
//	<hex-id> <desktop> <pid> <machine> <title...>
//
// The title is every remaining field rejoined with single spaces.
func parseWindow(line string) (Window, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Window{}, fmt.Errorf("want at least 4 fields, got %d", len(fields))
	}

	id, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 64)
	if err != nil {
		return Window{}, fmt.Errorf("window id %q: %w", fields[0], err)
	}
	desktop, err := strconv.Atoi(fields[1])
	if err != nil {
		return Window{}, fmt.Errorf("desktop %q: %w", fields[1], err)
	}
	pid, err := strconv.Atoi(fields[2])
	if err != nil || pid < 0 {
		return Window{}, fmt.Errorf("pid %q: not a non-negative integer", fields[2])
	}

	return Window{
		ID:      id,
		Desktop: desktop,
		PID:     pid,
		Machine: fields[3],
		Title:   strings.Join(fields[4:], " "),
	}, nil
}
