package id3log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", Debug},
		{"INFO", Info},
		{"warn", Warn},
		{"warning", Warn},
		{"error", Error},
		{"", Warn},
		{"bogus", Warn},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Warn, "text", "")

	l.Info("should not appear")
	l.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("Info logged below the configured Warn level: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("Warn message missing: %s", out)
	}
}

func TestLoggerTextFormatIncludesFieldsAndRunID(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Debug, "text", "run-123")

	l.Info("stage complete", F("examples", 42), F("attributes", 3))

	out := buf.String()
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "stage complete") {
		t.Errorf("missing level/message: %s", out)
	}
	if !strings.Contains(out, "run_id=run-123") {
		t.Errorf("missing run_id: %s", out)
	}
	if !strings.Contains(out, "examples=42") {
		t.Errorf("missing field: %s", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Debug, "json", "run-1")

	l.Error("boom", errFailed, F("attempt", 1))

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if rec["level"] != "ERROR" {
		t.Errorf("level = %v, want ERROR", rec["level"])
	}
	if rec["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", rec["run_id"])
	}
	fields, ok := rec["fields"].(map[string]any)
	if !ok {
		t.Fatalf("fields missing or wrong type: %v", rec["fields"])
	}
	if fields["error"] != errFailed.Error() {
		t.Errorf("error field = %v, want %v", fields["error"], errFailed.Error())
	}
}

type stubErr string

func (e stubErr) Error() string { return string(e) }

var errFailed = stubErr("failed")
