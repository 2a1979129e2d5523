// Package storage resolves where application data lives. The rest of
// the code never branches on platform; it asks the locator chosen once
// at startup.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locator is the single capability the application needs from the
// hosting platform: a writable data directory.
type Locator interface {
	DataDir() (string, error)
}

// NewLocator selects an implementation by name.
// Supported: portable (./data), home (~/.squares), xdg
// ($XDG_DATA_HOME/squares).
func NewLocator(platform string) (Locator, error) {
	switch platform {
	case "portable":
		return portableLocator{}, nil
	case "home":
		return homeLocator{}, nil
	case "xdg":
		return xdgLocator{}, nil
	default:
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
}

type portableLocator struct{}

func (portableLocator) DataDir() (string, error) {
	return "./data", nil
}

type homeLocator struct{}

func (homeLocator) DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".squares"), nil
}

type xdgLocator struct{}

func (xdgLocator) DataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "squares"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "squares"), nil
}
