package internal

import (
	"os"
	"path/filepath"
)

// DataPathEnv overrides the database location when set.
const DataPathEnv = "VENUECHAT_DATA"

// DefaultDataPath returns the venuechat database location: the
// VENUECHAT_DATA environment variable if set, else
// ~/.venuechat/venuechat.db.
func DefaultDataPath() (string, error) {
	if path := os.Getenv(DataPathEnv); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".venuechat", "venuechat.db"), nil
}

// EnsureDataDir creates the parent directory of the database path.
func EnsureDataDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
