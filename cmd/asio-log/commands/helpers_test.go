package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sbaudio/asio-go/pkg/log"
)

const (
	testSession = "5f0c2a9e-7d1b-4c3a-9e8f-112233445566"
	testDriver  = "{8E9A2B41-3C5D-4F60-9A1B-2C3D4E5F6071}"
)

var testTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.alog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sessionEvents is a short session: one scan, a shared acquire, release
// and shutdown.
func sessionEvents() []log.Event {
	at := func(ms int) time.Time { return testTime.Add(time.Duration(ms) * time.Millisecond) }
	lc := func(ms int, op log.Operation, result string, refs uint32) log.Event {
		return log.Event{
			Timestamp: at(ms), SessionID: testSession, Layer: log.LayerTable, Category: log.CategoryLifecycle,
			DriverID: testDriver, Lifecycle: &log.LifecycleEvent{Op: op, Result: result, RefCount: refs},
		}
	}
	code := -1000

	return []log.Event{
		{Timestamp: at(0), SessionID: testSession, Layer: log.LayerGuard, Category: log.CategoryGuard,
			Guard: &log.GuardEvent{Op: log.GuardInitialize, Count: 1, Transition: true}},
		{Timestamp: at(1), SessionID: testSession, Layer: log.LayerScanner, Category: log.CategoryScan,
			DriverID: testDriver, DriverName: "Studio Interface USB",
			Scan: &log.ScanEvent{KeyName: "Studio Interface", Accepted: true, Path: `C:\studio.dll`}},
		{Timestamp: at(2), SessionID: testSession, Layer: log.LayerScanner, Category: log.CategoryScan,
			Scan: &log.ScanEvent{KeyName: "Broken Entry", Reason: "missing CLSID value"}},
		lc(3, log.OpAcquire, "CREATED", 1),
		lc(4, log.OpAcquire, "ALREADY_SHARED", 2),
		lc(5, log.OpQuery, "", 2),
		{Timestamp: at(6), SessionID: testSession, Layer: log.LayerTable, Category: log.CategoryError,
			DriverID: testDriver, Error: &log.ErrorEventData{Layer: log.LayerTable, Message: "asio: not present", Code: &code, Context: "stop on release"}},
		lc(7, log.OpRelease, "STILL_SHARED", 1),
		lc(8, log.OpRelease, "ERASED", 0),
		{Timestamp: at(1500), SessionID: testSession, Layer: log.LayerGuard, Category: log.CategoryGuard,
			Guard: &log.GuardEvent{Op: log.GuardShutdown, Count: 0, Transition: true}},
	}
}
