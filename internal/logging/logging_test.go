package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.log")
	log, closeFn, err := New(path, "debug")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	log.WithField("algorithm", "bubble").Info("run started")
	log.Debug("tick")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "run started") || !strings.Contains(out, "algorithm=bubble") {
		t.Errorf("missing info line: %q", out)
	}
	if !strings.Contains(out, "tick") {
		t.Errorf("missing debug line: %q", out)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warn.log")
	log, closeFn, err := New(path, "warn")
	if err != nil {
		t.Fatal(err)
	}
	log.Info("hidden")
	log.Warn("shown")
	closeFn()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("unexpected output: %q", data)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_NoPath(t *testing.T) {
	log, closeFn, err := New("", "info")
	if err != nil {
		t.Fatal(err)
	}
	log.Info("dropped")
	if err := closeFn(); err != nil {
		t.Error(err)
	}
}
