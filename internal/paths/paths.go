// Package paths resolves the configuration directory and the session
// journal location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// appName is the directory name used under platform config roots.
const appName = "quadboard"

// Environment variable names for overrides.
const (
	EnvConfigDir = "QUADBOARD_CONFIG_DIR"
	EnvJournal   = "QUADBOARD_JOURNAL"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/quadboard (fallback ~/.config/quadboard)
// macOS:   ~/Library/Application Support/quadboard
// Windows: %APPDATA%/quadboard
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > QUADBOARD_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveJournalDSN returns the journal DSN following the precedence chain:
// flag > config.yaml journal_dsn > QUADBOARD_JOURNAL env > in-memory.
//
// Plain file paths are made absolute. The in-memory DSN and "file:" URIs are
// passed through unchanged.
func ResolveJournalDSN(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvJournal)} {
		if v != "" {
			return normalizeDSN(v)
		}
	}
	return types.MemoryJournal, nil
}

func normalizeDSN(dsn string) (string, error) {
	if dsn == types.MemoryJournal || strings.HasPrefix(dsn, "file:") {
		return dsn, nil
	}
	return filepath.Abs(dsn)
}
