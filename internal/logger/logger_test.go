package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesLogDir(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Config{ConfigDir: dir}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestHelpersNilSafe(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// None of these should panic with an uninitialized logger.
	Debug("debug", "k", "v")
	Info("info")
	Warn("warn")
	Error("error")
}

func TestInitDebugLevel(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Config{Debug: true, ConfigDir: dir}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Debug("visible in debug mode")
}
