// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering and output redirection

package log

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	defer SetOutput(os.Stderr)

	var buf bytes.Buffer
	SetOutput(&buf)

	SetLevel(slog.LevelInfo)
	Debug("suppressed", "token", "25m")
	if buf.Len() != 0 {
		t.Fatalf("debug record emitted at info level: %q", buf.String())
	}

	SetLevel(LevelDebug)
	Debug("emitted", "token", "25m")
	out := buf.String()
	if !strings.Contains(out, "msg=emitted") || !strings.Contains(out, "token=25m") {
		t.Errorf("unexpected debug output %q", out)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	defer SetOutput(os.Stderr)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelWarn)

	Info("hidden")
	Error("shown", "op", "render")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record emitted at warn level: %q", out)
	}
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected error record, got %q", out)
	}
}
