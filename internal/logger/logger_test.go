package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := DefaultConfig()
	cfg.Level = level
	cfg.Format = format
	cfg.Output = buf
	return New(cfg), buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(WARN, FormatText)
	cl := l.WithComponent(ComponentPlayer)

	cl.Debug("debug message")
	cl.Info("info message")
	cl.Warn("warn message")
	cl.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Fatalf("filtered levels leaked: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Fatalf("expected levels missing: %q", out)
	}
}

func TestComponentGating(t *testing.T) {
	l, buf := newBufferLogger(DEBUG, FormatText)
	l.DisableComponent(ComponentExtractor)

	l.WithComponent(ComponentExtractor).Info("hidden")
	l.WithComponent(ComponentPlayer).Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("disabled component logged: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("enabled component did not log: %q", out)
	}
}

func TestTextFormatIncludesFields(t *testing.T) {
	l, buf := newBufferLogger(INFO, FormatText)
	l.WithComponent(ComponentResolver).Info("resolved", map[string]interface{}{
		"player_id": "0004de42",
	})

	out := buf.String()
	if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "[resolver]") {
		t.Fatalf("prefix missing: %q", out)
	}
	if !strings.Contains(out, "player_id=0004de42") {
		t.Fatalf("fields missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	l, buf := newBufferLogger(INFO, FormatJSON)
	l.WithComponent(ComponentFixup).Warn("guard removed")

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON output %q: %v", buf.String(), err)
	}
	if entry.Component != ComponentFixup || entry.Message != "guard removed" || entry.Level != WARN {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}
