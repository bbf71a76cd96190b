package x11

import (
	"errors"
	"fmt"
	"os/exec"
	"reflect"
	"testing"
)

// fakeRunner serves canned results per command name and records calls.
type fakeRunner struct {
	results map[string]fakeResult
	calls   [][]string
}

type fakeResult struct {
	out []byte
	err error
}

func (f *fakeRunner) Output(name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	res, ok := f.results[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, exec.ErrNotFound)
	}
	return res.out, res.err
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: map[string]fakeResult{}}
}

const windowListing = "0x03a00007  0 1829 host Mozilla Firefox\n" +
	"0x03c00003  1 1829 host Library\n" +
	"garbage line\n" +
	"0x0220000a  0 997 host Terminal\n"

func TestLocator_FindWindows(t *testing.T) {
	run := newFakeRunner()
	run.results[PIDLookupTool] = fakeResult{out: []byte("1829\n")}
	run.results[WindowListTool] = fakeResult{out: []byte(windowListing)}
	l := &Locator{run: run}

	windows, err := l.FindWindows("firefox")
	if err != nil {
		t.Fatalf("FindWindows() error = %v", err)
	}

	want := []Window{
		{ID: 0x03a00007, Desktop: 0, PID: 1829, Machine: "host", Title: "Mozilla Firefox"},
		{ID: 0x03c00003, Desktop: 1, PID: 1829, Machine: "host", Title: "Library"},
	}
	if !reflect.DeepEqual(windows, want) {
		t.Errorf("FindWindows() = %+v, want %+v", windows, want)
	}

	if len(run.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(run.calls))
	}
	if got := run.calls[0]; !reflect.DeepEqual(got, []string{PIDLookupTool, "firefox"}) {
		t.Errorf("pid lookup call = %v", got)
	}
	if got := run.calls[1]; !reflect.DeepEqual(got, []string{WindowListTool, "-lp"}) {
		t.Errorf("window list call = %v", got)
	}
}

func TestLocator_FindWindows_MultiplePIDs(t *testing.T) {
	run := newFakeRunner()
	run.results[PIDLookupTool] = fakeResult{out: []byte("  1829 997  notanint \n")}
	run.results[WindowListTool] = fakeResult{out: []byte(windowListing)}
	l := &Locator{run: run}

	windows, err := l.FindWindows("firefox")
	if err != nil {
		t.Fatalf("FindWindows() error = %v", err)
	}
	if len(windows) != 3 {
		t.Errorf("len(windows) = %d, want 3", len(windows))
	}
}

func TestLocator_FindWindows_EmptyResults(t *testing.T) {
	exitErr := &exec.ExitError{}

	tests := []struct {
		name    string
		pidof   fakeResult
		windows fakeResult
	}{
		{
			name:    "process not running",
			pidof:   fakeResult{err: exitErr},
			windows: fakeResult{out: []byte(windowListing)},
		},
		{
			name:    "window list tool fails",
			pidof:   fakeResult{out: []byte("1829\n")},
			windows: fakeResult{err: exitErr},
		},
		{
			name:    "pid output is not text",
			pidof:   fakeResult{out: []byte{0xff, 0xfe, 0x00}},
			windows: fakeResult{out: []byte(windowListing)},
		},
		{
			name:    "window list output is not text",
			pidof:   fakeResult{out: []byte("1829\n")},
			windows: fakeResult{out: []byte{0xff, 0xfe}},
		},
		{
			name:    "no output at all",
			pidof:   fakeResult{},
			windows: fakeResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := newFakeRunner()
			run.results[PIDLookupTool] = tt.pidof
			run.results[WindowListTool] = tt.windows
			l := &Locator{run: run}

			windows, err := l.FindWindows("firefox")
			if err != nil {
				t.Fatalf("FindWindows() error = %v, want nil", err)
			}
			if len(windows) != 0 {
				t.Errorf("FindWindows() = %+v, want empty", windows)
			}
		})
	}
}

func TestLocator_FindWindows_ToolNotFound(t *testing.T) {
	tests := []struct {
		name    string
		present string
	}{
		{"pid lookup tool missing", WindowListTool},
		{"window list tool missing", PIDLookupTool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := newFakeRunner()
			run.results[tt.present] = fakeResult{out: []byte("1829\n")}
			l := &Locator{run: run}

			_, err := l.FindWindows("firefox")
			if !errors.Is(err, ErrToolNotFound) {
				t.Errorf("FindWindows() error = %v, want ErrToolNotFound", err)
			}
		})
	}
}
