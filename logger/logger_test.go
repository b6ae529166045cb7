package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/snipdeck-core/paths"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

// setupTestHome points HOME at a temp dir so default-path logging stays
// isolated from the real user directories.
func setupTestHome(t *testing.T) string {
	t.Helper()
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	paths.Reset()
	t.Cleanup(paths.Reset)
	return tmpHome
}

func TestGet(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	log := Get()
	if log == nil {
		t.Fatal("Get() returned nil")
	}

	// Should not panic
	log.Info("test message")
	log.Debug("debug message", "key", "value")
	log.Warn("warning", "count", 42)
	log.Error("error occurred", "err", "something failed")
}

func TestGet_StructuredLogging(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := Get()
	log.Info("user action", "action", "import", "count", 123)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)

	if !strings.Contains(contentStr, "user action") {
		t.Error("Should contain message")
	}
	if !strings.Contains(contentStr, "action=import") {
		t.Error("Should contain action=import")
	}
	if !strings.Contains(contentStr, "count=123") {
		t.Error("Should contain count=123")
	}
}

func TestClose(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Close should not panic
	Close()
}

func TestLogFile_Exists(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Write a test message
	testMsg := "test-unique-string-12345"
	Get().Info(testMsg)

	// Read the log file and verify our message is there
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), testMsg) {
		t.Error("Log file should contain the logged message")
	}
}

func TestLog_Timestamp(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Log a unique message
	uniqueMsg := "timestamp-test-unique-marker"
	Get().Info(uniqueMsg)

	// Read and verify timestamp exists (slog uses time= prefix)
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	lines := strings.Split(string(content), "\n")
	for _, line := range lines {
		if strings.Contains(line, uniqueMsg) {
			// slog TextHandler format includes time=
			if !strings.Contains(line, "time=") {
				t.Error("Log line should contain timestamp")
			}
			return
		}
	}

	t.Error("Could not find test message in log")
}

func TestLog_Concurrent(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Test that concurrent logging doesn't cause issues
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(n int) {
			log := Get()
			for j := 0; j < 100; j++ {
				log.Debug("concurrent test", "goroutine", n, "iteration", j)
			}
			done <- true
		}(i)
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestReset(t *testing.T) {
	// First initialization
	tmpDir := t.TempDir()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	Get().Info("message to log1")

	// Reset and reinitialize to a different path
	Reset()

	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}

	Get().Info("message to log2")

	// Verify log1 has the first message but not the second
	content1, err := os.ReadFile(logPath1)
	if err != nil {
		t.Fatalf("Failed to read log1: %v", err)
	}
	if !strings.Contains(string(content1), "message to log1") {
		t.Error("log1 should contain 'message to log1'")
	}
	if strings.Contains(string(content1), "message to log2") {
		t.Error("log1 should NOT contain 'message to log2'")
	}

	// Verify log2 has the second message but not the first
	content2, err := os.ReadFile(logPath2)
	if err != nil {
		t.Fatalf("Failed to read log2: %v", err)
	}
	if !strings.Contains(string(content2), "message to log2") {
		t.Error("log2 should contain 'message to log2'")
	}
	if strings.Contains(string(content2), "message to log1") {
		t.Error("log2 should NOT contain 'message to log1'")
	}

	Reset()
}

func TestLogLevels(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Enable debug level
	SetDebug(true)
	defer SetDebug(false)

	log := Get()
	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)

	// All messages should be present at debug level
	if !strings.Contains(contentStr, "debug message") {
		t.Error("Should contain debug message")
	}
	if !strings.Contains(contentStr, "info message") {
		t.Error("Should contain info message")
	}
	if !strings.Contains(contentStr, "warn message") {
		t.Error("Should contain warn message")
	}
	if !strings.Contains(contentStr, "error message") {
		t.Error("Should contain error message")
	}

	// Verify level strings appear in output (slog uses level=DEBUG format)
	if !strings.Contains(contentStr, "level=DEBUG") {
		t.Error("Should contain level=DEBUG marker")
	}
	if !strings.Contains(contentStr, "level=INFO") {
		t.Error("Should contain level=INFO marker")
	}
	if !strings.Contains(contentStr, "level=WARN") {
		t.Error("Should contain level=WARN marker")
	}
	if !strings.Contains(contentStr, "level=ERROR") {
		t.Error("Should contain level=ERROR marker")
	}
}

func TestLogLevel_Filtering(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Default is Info level - Debug should be filtered
	SetDebug(false)

	log := Get()
	log.Debug("debug-filtered")
	log.Info("info-visible")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)

	// Debug should be filtered out
	if strings.Contains(contentStr, "debug-filtered") {
		t.Error("Debug message should be filtered at Info level")
	}

	// Info should be visible
	if !strings.Contains(contentStr, "info-visible") {
		t.Error("Info message should be visible at Info level")
	}
}

func TestWithComponent(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Get a component logger
	storeLog := WithComponent("store")

	// Log a message with the component logger
	storeLog.Info("snippets saved", "count", 12)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)

	// Should contain the message
	if !strings.Contains(contentStr, "snippets saved") {
		t.Error("Should contain 'snippets saved' message")
	}

	// Should contain the component attribute
	if !strings.Contains(contentStr, "component=store") {
		t.Error("Should contain 'component=store' attribute")
	}

	// Should contain the count attribute
	if !strings.Contains(contentStr, "count=12") {
		t.Error("Should contain 'count=12' attribute")
	}
}

func TestLoggerWithAttrs(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Create a logger with pre-attached attributes
	log := Get().With("file", "snippets.json", "op", "load")

	log.Info("library loaded")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)

	// Should contain all pre-attached attributes
	if !strings.Contains(contentStr, "file=snippets.json") {
		t.Error("Should contain 'file=snippets.json' attribute")
	}
	if !strings.Contains(contentStr, "op=load") {
		t.Error("Should contain 'op=load' attribute")
	}
}

func TestEnsureInit_DefaultPath(t *testing.T) {
	setupTestHome(t)
	Reset()
	defer Reset()

	// Don't call Init - let ensureInit use the default path
	log := Get()
	if log == nil {
		t.Fatal("Get() returned nil without prior Init()")
	}

	// Should not panic
	log.Info("default path test")
}

func TestConcurrent_InitAndGet(t *testing.T) {
	setupTestHome(t)

	// Test that concurrent Init and Get/WithComponent calls don't race
	for i := 0; i < 10; i++ {
		Reset()

		tmpDir := t.TempDir()
		logPath := filepath.Join(tmpDir, "concurrent.log")

		done := make(chan bool, 15)

		for j := 0; j < 5; j++ {
			go func() {
				_ = Init(logPath)
				done <- true
			}()
			go func() {
				Get().Info("concurrent get")
				done <- true
			}()
			go func() {
				WithComponent("comp").Info("concurrent component")
				done <- true
			}()
		}

		for j := 0; j < 15; j++ {
			<-done
		}
	}
	Reset()
}

func TestClearLogs(t *testing.T) {
	tmpHome := setupTestHome(t)
	Reset()
	defer Reset()

	logsDir := filepath.Join(tmpHome, ".snipdeck", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"snipdeck.log", "old-debug.log"} {
		if err := os.WriteFile(filepath.Join(logsDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(logsDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	count, err := ClearLogs()
	if err != nil {
		t.Fatalf("ClearLogs: %v", err)
	}
	if count != 2 {
		t.Errorf("ClearLogs removed %d files, want 2", count)
	}

	if _, err := os.Stat(filepath.Join(logsDir, "snipdeck.log")); !os.IsNotExist(err) {
		t.Error("snipdeck.log should be removed")
	}
	if _, err := os.Stat(filepath.Join(logsDir, "notes.txt")); err != nil {
		t.Error("ClearLogs should only remove .log files")
	}
}

func TestClearLogs_EmptyDir(t *testing.T) {
	setupTestHome(t)
	Reset()
	defer Reset()

	count, err := ClearLogs()
	if err != nil {
		t.Fatalf("ClearLogs: %v", err)
	}
	if count != 0 {
		t.Errorf("ClearLogs removed %d files from missing dir, want 0", count)
	}
}
