package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeDecodeLifecycleEvent(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 30, 45, 123456789, time.UTC)
	event := Event{
		Timestamp:  ts,
		SessionID:  "0c6f1a9e-8c1b-4c7a-9a43-2f0f0d1f2b11",
		Layer:      LayerTable,
		Category:   CategoryLifecycle,
		DriverID:   "{A91EAEFB-2F47-4C2D-BB2F-F4A0F8E1C9B3}",
		DriverName: "Yamaha Steinberg USB ASIO",
		Lifecycle: &LifecycleEvent{
			Op:       OpRelease,
			Result:   "STILL_SHARED",
			RefCount: 2,
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(ts) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, ts)
	}
	if decoded.DriverName != event.DriverName {
		t.Errorf("DriverName: got %q, want %q", decoded.DriverName, event.DriverName)
	}
	if decoded.Lifecycle == nil {
		t.Fatal("Lifecycle is nil")
	}
	if *decoded.Lifecycle != *event.Lifecycle {
		t.Errorf("Lifecycle: got %+v, want %+v", *decoded.Lifecycle, *event.Lifecycle)
	}
	if decoded.Scan != nil || decoded.Guard != nil || decoded.Error != nil {
		t.Error("unexpected payloads decoded")
	}
}

func TestEncodeOmitsEmptyPayloads(t *testing.T) {
	bare, err := EncodeEvent(Event{SessionID: "s"})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	full, err := EncodeEvent(Event{SessionID: "s", Guard: &GuardEvent{Op: GuardShutdown}})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if len(full) <= len(bare) {
		t.Errorf("payload did not grow encoding: bare=%d full=%d", len(bare), len(full))
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	code := -1000
	events := []Event{
		{SessionID: "s", Layer: LayerGuard, Category: CategoryGuard, Guard: &GuardEvent{Op: GuardInitialize, Count: 1, Transition: true}},
		{SessionID: "s", Layer: LayerScanner, Category: CategoryScan, Scan: &ScanEvent{KeyName: "broken", Reason: "missing CLSID"}},
		{SessionID: "s", Layer: LayerTable, Category: CategoryError, Error: &ErrorEventData{Layer: LayerTable, Message: "activation failed", Code: &code}},
	}
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i := range events {
		var got Event
		if err := dec.Decode(&got); err != nil {
			t.Fatalf("Decode %d failed: %v", i, err)
		}
		if got.Layer != events[i].Layer || got.Category != events[i].Category {
			t.Errorf("event %d: got %s/%s", i, got.Layer, got.Category)
		}
	}

	var last Event
	if err := NewDecoder(bytes.NewReader(mustEncode(t, events[2]))).Decode(&last); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if last.Error == nil || last.Error.Code == nil || *last.Error.Code != -1000 {
		t.Errorf("Error payload: got %+v", last.Error)
	}
}

func mustEncode(t *testing.T, e Event) []byte {
	t.Helper()
	data, err := EncodeEvent(e)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	return data
}
