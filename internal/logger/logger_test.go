package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WithValidConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid json config stdout",
			config: Config{Level: "debug", Format: "json", Output: "stdout"},
		},
		{
			name:   "valid text config stderr",
			config: Config{Level: "info", Format: "text", Output: "stderr"},
		},
		{
			name:   "empty format and output default to text on stderr",
			config: Config{Level: "warn"},
		},
		{
			name:   "valid json config file",
			config: Config{Level: "warn", Format: "json", Output: filepath.Join(t.TempDir(), "logs", "cronpatch.log")},
		},
		{
			name:    "invalid level",
			config:  Config{Level: "invalid", Format: "json", Output: "stdout"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			config:  Config{Level: "debug", Format: "xml", Output: "stdout"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Error("New() returned nil logger without error")
			}
		})
	}
}

func TestNew_FileOutputCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cronpatch.log")

	log, err := New(Config{Level: "info", Format: "text", Output: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Info("written to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("Expected log file to contain message, got: %s", data)
	}
}

func TestLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	log := createTestLogger(t, buf, "info")

	log.Debug("hidden debug message")
	log.Info("visible info message", Field{Key: "job", Value: "daily"})
	log.Warn("visible warn message")

	output := buf.String()
	if strings.Contains(output, "hidden debug message") {
		t.Errorf("Debug message should be filtered at info level, got: %s", output)
	}
	for _, want := range []string{"visible info message", "daily", "visible warn message"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected log to contain %q, got: %s", want, output)
		}
	}
}

func TestLogger_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	log := createTestLogger(t, buf, "debug")

	log.Error("backup failed", errors.New("disk full"), Field{Key: "file", Value: "jobs.json"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "backup failed" {
		t.Errorf("msg = %v, want backup failed", entry["msg"])
	}
	if entry["error"] != "disk full" {
		t.Errorf("error = %v, want disk full", entry["error"])
	}
	if entry["file"] != "jobs.json" {
		t.Errorf("file = %v, want jobs.json", entry["file"])
	}
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	log := createTestLogger(t, buf, "debug")

	log.With(Field{Key: "file", Value: "jobs.json"}).Info("loaded")

	output := buf.String()
	if !strings.Contains(output, `"file":"jobs.json"`) {
		t.Errorf("Expected log to contain bound field, got: %s", output)
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("discarded")
	log.Error("discarded", errors.New("x"))
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		if _, ok := ParseLevel(level); !ok {
			t.Errorf("ParseLevel(%q) should be valid", level)
		}
	}
	if _, ok := ParseLevel("trace"); ok {
		t.Error("ParseLevel(trace) should be invalid")
	}
}

func createTestLogger(t *testing.T, buf *bytes.Buffer, level string) *Logger {
	t.Helper()
	log, err := New(Config{Level: level, Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	return log
}
