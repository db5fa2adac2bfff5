package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLogPath(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, LogDirName, LogFileName)
	origGetLogPath := getLogPath
	getLogPath = func() (string, error) {
		return logPath, nil
	}
	t.Cleanup(func() {
		getLogPath = origGetLogPath
		Close()
		resetForTest()
	})
	return logPath
}

func TestInit_Disabled(t *testing.T) {
	resetForTest()
	t.Setenv(EnvVar, "")

	if err := Init(false); err != nil {
		t.Fatalf("Init(false) failed: %v", err)
	}
	if Enabled() {
		t.Error("Enabled() should return false when initialized with false")
	}

	// No-ops, must not panic.
	Log("test message")
	Logf("test %s", "formatted")
	Timed("noop")()
}

func TestInit_EnabledWritesLog(t *testing.T) {
	resetForTest()
	logPath := useTempLogPath(t)

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() should return true when initialized with true")
	}

	Log("flattened", 12, "nodes")
	Logf("filter %q matched %d", "a1", 3)
	Timed("flatten")()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	text := string(content)
	for _, want := range []string{"debug log started", "flattened", `filter "a1" matched 3`, "flatten took"} {
		if !strings.Contains(text, want) {
			t.Errorf("log file missing %q:\n%s", want, text)
		}
	}
}

func TestInit_EnvVarEnablesLogging(t *testing.T) {
	resetForTest()
	useTempLogPath(t)
	t.Setenv(EnvVar, "1")

	if err := Init(false); err != nil {
		t.Fatalf("Init(false) failed: %v", err)
	}
	if !Enabled() {
		t.Fatalf("expected %s to enable logging", EnvVar)
	}
}

func TestInit_TruncatesExistingLog(t *testing.T) {
	resetForTest()
	logPath := useTempLogPath(t)

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		t.Fatalf("Failed to create log directory: %v", err)
	}
	if err := os.WriteFile(logPath, []byte("old log content\n"), 0600); err != nil {
		t.Fatalf("Failed to write pre-existing log: %v", err)
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "old log content") {
		t.Error("Log file should have been truncated")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	resetForTest()
	useTempLogPath(t)

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	Close()
	Close()
}

func TestGetLogPath(t *testing.T) {
	path, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() failed: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(LogDirName, LogFileName)) {
		t.Errorf("GetLogPath() = %q, want suffix %q", path, filepath.Join(LogDirName, LogFileName))
	}
}

func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = nil
}
