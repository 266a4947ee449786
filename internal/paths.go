package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DataPaths holds the resolved locations for local app data
type DataPaths struct {
	DataDir      string // base directory for all app data
	DatabasePath string // sqlite key-value store file
}

// ResolveDataPaths resolves where local data lives. Resolution order:
// explicit override (flag), RANTU_DATA_DIR, then a per-OS default under
// the user's home directory.
func ResolveDataPaths(override string) (DataPaths, error) {
	dir := override
	if dir == "" {
		dir = os.Getenv("RANTU_DATA_DIR")
	}

	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DataPaths{}, fmt.Errorf("failed to get home directory: %w", err)
		}

		switch runtime.GOOS {
		case "darwin":
			dir = filepath.Join(home, "Library/Application Support/rantu")
		default:
			dir = filepath.Join(home, ".local/share/rantu")
		}
	}

	return DataPaths{
		DataDir:      dir,
		DatabasePath: filepath.Join(dir, "rantu.db"),
	}, nil
}

// EnsureDataDir creates the data directory if it does not exist
func (dp DataPaths) EnsureDataDir() error {
	return os.MkdirAll(dp.DataDir, 0755)
}
