// Package manifest generates and installs the browser's native-messaging
// host manifest, which tells the browser where the host binary lives and
// which extensions may invoke it.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// HostName is the native-messaging host name the extension connects to.
const HostName = "untitled"

// DefaultExtension is the extension ID allowed to invoke the host when no
// other IDs are given.
const DefaultExtension = "hide-title-bar@hmiko.github.io"

// Browsers with a supported manifest location.
const (
	BrowserFirefox   = "firefox"
	BrowserLibrewolf = "librewolf"
)

// Manifest is the browser's native-messaging host manifest file.
type Manifest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Path              string   `json:"path"`
	Type              string   `json:"type"`
	AllowedExtensions []string `json:"allowed_extensions"`
}

// New returns a manifest for the host binary at execPath, allowing the
// given extension IDs.
func New(execPath string, extensions ...string) *Manifest {
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}
	return &Manifest{
		Name:              HostName,
		Description:       "Hides the title bar of the browser's windows",
		Path:              execPath,
		Type:              "stdio",
		AllowedExtensions: extensions,
	}
}

// Dir returns the per-user manifest directory for the given browser.
func Dir(browser, home string) (string, error) {
	switch browser {
	case BrowserFirefox:
		return filepath.Join(home, ".mozilla", "native-messaging-hosts"), nil
	case BrowserLibrewolf:
		return filepath.Join(home, ".librewolf", "native-messaging-hosts"), nil
	default:
		return "", fmt.Errorf("unsupported browser: %s", browser)
	}
}

// Path returns the manifest file path for the given browser.
func Path(browser, home string) (string, error) {
	dir, err := Dir(browser, home)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HostName+".json"), nil
}

// Render returns the manifest as indented JSON with a trailing newline.
func (m *Manifest) Render() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Install writes the manifest into the browser's manifest directory,
// creating it if needed, and returns the written file path.
func (m *Manifest) Install(browser, home string) (string, error) {
	path, err := Path(browser, home)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create manifest dir: %w", err)
	}
	data, err := m.Render()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// Uninstall removes an installed manifest and returns its path. Removing
// a manifest that was never installed is not an error.
func Uninstall(browser, home string) (string, error) {
	path, err := Path(browser, home)
	if err != nil {
		return "", err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove manifest: %w", err)
	}
	return path, nil
}
