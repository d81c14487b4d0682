package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// setupFile points the global logger at a fresh file for one test.
func setupFile(t *testing.T, level string, file FileConfig) {
	t.Helper()
	if err := Setup(Options{Level: level, File: file}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "stairgen.log")

	// 1MB is the smallest size lumberjack rotates at.
	setupFile(t, "debug", FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2})

	pad := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Info("step placed", zap.Int("index", i), zap.String("pad", pad))
	}
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}

	var rotated int
	for _, e := range entries {
		name := e.Name()
		if name == "stairgen.log" {
			continue
		}
		if !strings.HasPrefix(name, "stairgen-") || !strings.HasSuffix(name, ".log") {
			t.Errorf("unexpected file %s", name)
			continue
		}
		rotated++
	}
	if rotated == 0 {
		t.Errorf("no rotated files among %d entries", len(entries))
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "levels.log")
			setupFile(t, tt.level, FileConfig{Path: logFile, MaxSizeMB: 1})

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			out := readLog(t, logFile)
			for _, want := range tt.expected {
				if !strings.Contains(out, want) {
					t.Errorf("expected %s in log output", want)
				}
			}
			for _, unwanted := range tt.excluded {
				if strings.Contains(out, unwanted) {
					t.Errorf("unexpected %s in log output", unwanted)
				}
			}
		})
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	err := Setup(Options{Level: "loud"})
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Setup error = %v, want ErrUnknownLevel", err)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	got := DefaultFileConfig("stairgen.log")
	want := FileConfig{Path: "stairgen.log", MaxSizeMB: 5, MaxBackups: 2, MaxAgeDays: 30}
	if got != want {
		t.Errorf("DefaultFileConfig() = %+v, want %+v", got, want)
	}
}

func TestCloseFallsBackToNop(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "closed.log")
	setupFile(t, "info", FileConfig{Path: logFile, MaxSizeMB: 1})

	Info("before close")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	Info("after close")

	out := readLog(t, logFile)
	if !strings.Contains(out, "before close") {
		t.Errorf("missing entry written before Close: %q", out)
	}
	if strings.Contains(out, "after close") {
		t.Errorf("entry written after Close: %q", out)
	}
}

func TestNamedBeforeSetup(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Must not panic and must not write anywhere.
	Named("stair").Debug("rebuild", zap.Int("steps", 3))
	Info("no sink configured")
}

func TestNamedLoggerWritesName(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	setupFile(t, "debug", FileConfig{Path: logFile, MaxSizeMB: 1})

	Named("scene").Debug("unit created", zap.Uint64("handle", 7))

	out := readLog(t, logFile)
	for _, want := range []string{"scene", "unit created", "handle"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output, got %q", want, out)
		}
	}
}
