package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDataFile is where sessions live, relative to the working directory.
	DefaultDataFile = "work_log.json"
	// DefaultDirName names the folder under the user's config directory.
	DefaultDirName = "masa"
	// ConfigFileName is the YAML file looked up inside DefaultDirName.
	ConfigFileName = "config.yaml"
)

// ResolveConfigPath returns the default config file location, normally
// ~/.config/masa/config.yaml on Linux.
func ResolveConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultDirName, ConfigFileName), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(input string) (string, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "~") {
		return input, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(input, "~")), nil
}
