package x11

import "testing"

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Window
	}{
		{
			name: "plain line",
			line: "1a2b 0 4321 host.example Some Title",
			want: Window{ID: 0x1a2b, Desktop: 0, PID: 4321, Machine: "host.example", Title: "Some Title"},
		},
		{
			name: "wmctrl hex prefix",
			line: "0x03a00007  0 1829   workstation Mozilla Firefox",
			want: Window{ID: 0x03a00007, Desktop: 0, PID: 1829, Machine: "workstation", Title: "Mozilla Firefox"},
		},
		{
			name: "sticky window on all desktops",
			line: "0x01e00004 -1 997 workstation Plank",
			want: Window{ID: 0x01e00004, Desktop: -1, PID: 997, Machine: "workstation", Title: "Plank"},
		},
		{
			name: "empty title",
			line: "0x0220000a 1 1514 workstation",
			want: Window{ID: 0x0220000a, Desktop: 1, PID: 1514, Machine: "workstation", Title: ""},
		},
		{
			name: "title with runs of whitespace",
			line: "0x0400003 2 2001 host a   spaced\ttitle",
			want: Window{ID: 0x0400003, Desktop: 2, PID: 2001, Machine: "host", Title: "a spaced title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWindow(tt.line)
			if err != nil {
				t.Fatalf("parseWindow(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("parseWindow(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseWindow_Invalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"only three fields", "1a2b 0 4321"},
		{"non-hex id", "zzzz 0 4321 host title"},
		{"non-integer desktop", "1a2b x 4321 host title"},
		{"non-integer pid", "1a2b 0 abc host title"},
		{"negative pid", "1a2b 0 -4321 host title"},
		{"empty line", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseWindow(tt.line); err == nil {
				t.Errorf("parseWindow(%q) expected an error", tt.line)
			}
		})
	}
}
