package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeEvents(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.alog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var out []Event
	for {
		e, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, e)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, SessionID: "a", Layer: LayerGuard, Category: CategoryGuard},
		{Timestamp: base.Add(time.Second), SessionID: "a", Layer: LayerScanner, Category: CategoryScan, DriverID: "{X}"},
		{Timestamp: base.Add(2 * time.Second), SessionID: "a", Layer: LayerTable, Category: CategoryLifecycle, DriverID: "{X}"},
		{Timestamp: base.Add(3 * time.Second), SessionID: "b", Layer: LayerTable, Category: CategoryError, DriverID: "{Y}"},
	}
	path := writeEvents(t, events)

	table := LayerTable
	lifecycle := CategoryLifecycle
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 4},
		{"session", Filter{SessionID: "b"}, 1},
		{"layer", Filter{Layer: &table}, 2},
		{"category", Filter{Category: &lifecycle}, 1},
		{"driver", Filter{DriverID: "{X}"}, 2},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{Layer: &table, DriverID: "{Y}"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer r.Close()

			if got := len(readAll(t, r)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.alog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderTruncatedEvent(t *testing.T) {
	path := writeEvents(t, []Event{
		{SessionID: "s", Layer: LayerTable, Category: CategoryLifecycle, DriverID: "{X}"},
		{SessionID: "s", Layer: LayerTable, Category: CategoryLifecycle, DriverID: "{Y}"},
	})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)-3], 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	if e, err := r.Next(); err != nil || e.DriverID != "{X}" {
		t.Fatalf("first event: got %+v, %v", e, err)
	}
	if _, err := r.Next(); err == nil || errors.Is(err, io.EOF) {
		t.Errorf("truncated event: got %v, want a decode error", err)
	}
}
