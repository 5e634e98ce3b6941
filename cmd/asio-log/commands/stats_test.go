package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunStats(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 10",
		"Sessions:     1",
		"SCANNER:",
		"TABLE:",
		"GUARD:",
		"LIFECYCLE:",
		"Drivers: 1",
		`"Studio Interface USB"`,
		"created 1, erased 1, queries 1, peak refs 2",
		"errors 1",
		"Skipped registry entries: 1",
		"Errors: 1",
		"Duration:   2s",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Time Range") {
		t.Error("empty log should not print a time range")
	}
}
