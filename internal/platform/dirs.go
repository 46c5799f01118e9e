package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// AppDirName is the per-user directory name for logs and config
const AppDirName = "movie-explorer"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// LogDir returns the per-user log directory, e.g. ~/.cache/movie-explorer/logs
func LogDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache dir: %w", err)
	}
	return filepath.Join(base, AppDirName, "logs"), nil
}

// DefaultLogFile returns the log file path inside LogDir, creating the directory
func DefaultLogFile() (string, error) {
	dir, err := LogDir()
	if err != nil {
		return "", err
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create log dir: %w", err)
	}
	return filepath.Join(dir, AppDirName+".log"), nil
}
