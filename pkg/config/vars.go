package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnpot"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnpot by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for application data.
// Returns ~/.local/share/gnpot by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// RecordsDir returns the default directory of the record store.
// Returns ~/.local/share/gnpot/records by default.
func RecordsDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "records")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnpot/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnpot/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
