package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pickupplot/pickupplot/internal/logging"
	"go.uber.org/zap/zapcore"
)

func TestWithLevel(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, c := range cases {
		l, err := logging.New(logging.WithLevel(c.level))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got := l.Level(); got != c.want {
			t.Errorf("level %q: got %v, want %v", c.level, got, c.want)
		}
	}
}

func TestWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pickupplot.log")
	l, err := logging.New(logging.WithFile(path), logging.WithFields(map[string]any{"app": "pickupplot", "": "dropped"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("hello")
	l.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	var line map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &line); err != nil {
		t.Fatalf("log line %q is not JSON: %v", data, err)
	}
	if line["msg"] != "hello" || line["app"] != "pickupplot" {
		t.Fatalf("log line = %v", line)
	}
	if _, ok := line[""]; ok {
		t.Fatalf("empty field key logged")
	}
}

func TestWithDevelopmentKeepsLevel(t *testing.T) {
	l, err := logging.New(logging.WithLevel("error"), logging.WithDevelopment(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Level() != zapcore.ErrorLevel {
		t.Fatalf("level = %v", l.Level())
	}
}
