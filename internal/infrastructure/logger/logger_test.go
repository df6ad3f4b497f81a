package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf, "debug", true)
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", l.GetLevel())
	}

	l.WithField("store", "file").Info("ready")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not json: %v (%q)", err, buf.String())
	}
	if line["msg"] != "ready" || line["store"] != "file" {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestNew_DevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf, "warn", false)

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Fatalf("want text line, got %q", out)
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := NewWithOutput(&bytes.Buffer{}, "loud", false)
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", l.GetLevel())
	}
}
