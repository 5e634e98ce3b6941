package log

import "testing"

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"LayerScanner", LayerScanner.String(), "SCANNER"},
		{"LayerTable", LayerTable.String(), "TABLE"},
		{"LayerGuard", LayerGuard.String(), "GUARD"},
		{"Layer(9)", Layer(9).String(), "UNKNOWN"},
		{"CategoryScan", CategoryScan.String(), "SCAN"},
		{"CategoryLifecycle", CategoryLifecycle.String(), "LIFECYCLE"},
		{"CategoryGuard", CategoryGuard.String(), "GUARD"},
		{"CategoryError", CategoryError.String(), "ERROR"},
		{"Category(9)", Category(9).String(), "UNKNOWN"},
		{"OpAcquire", OpAcquire.String(), "ACQUIRE"},
		{"OpQuery", OpQuery.String(), "QUERY"},
		{"OpRelease", OpRelease.String(), "RELEASE"},
		{"OpTeardown", OpTeardown.String(), "TEARDOWN"},
		{"OpHandleRelease", OpHandleRelease.String(), "HANDLE_RELEASE"},
		{"Operation(9)", Operation(9).String(), "UNKNOWN"},
		{"GuardInitialize", GuardInitialize.String(), "INITIALIZE"},
		{"GuardShutdown", GuardShutdown.String(), "SHUTDOWN"},
		{"GuardOp(9)", GuardOp(9).String(), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
