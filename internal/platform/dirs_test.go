package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected directory to exist: %v", err)
	}

	// second call is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error on existing dir, got %v", err)
	}
}

func TestDefaultLogFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LocalAppData", t.TempDir())

	path, err := DefaultLogFile()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(AppDirName, "logs", AppDirName+".log")) {
		t.Errorf("Unexpected log file path %s", path)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("Expected log dir to be created: %v", err)
	}
}
