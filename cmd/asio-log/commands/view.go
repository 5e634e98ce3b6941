// Package commands implements the asio-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/sbaudio/asio-go/pkg/log"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer    *log.Layer
	Category *log.Category
	DriverID string
}

func (f ViewFilter) matches(e log.Event) bool {
	if f.Layer != nil && e.Layer != *f.Layer {
		return false
	}
	if f.Category != nil && e.Category != *f.Category {
		return false
	}
	if f.DriverID != "" && !strings.EqualFold(e.DriverID, f.DriverID) {
		return false
	}
	return true
}

// eventLabel names the payload carried by an event.
func eventLabel(e log.Event) string {
	switch {
	case e.Scan != nil:
		if e.Scan.Accepted {
			return "Accepted"
		}
		return "Skipped"
	case e.Lifecycle != nil:
		return e.Lifecycle.Op.String()
	case e.Guard != nil:
		return e.Guard.Op.String()
	case e.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session] LAYER Label
	ts := event.Timestamp.UTC().Format(timestampLayout)
	fmt.Fprintf(w, "%s [%s] %-7s %s\n", ts, shortenID(event.SessionID), event.Layer.String(), eventLabel(event))

	if event.DriverID != "" || event.DriverName != "" {
		fmt.Fprintf(w, "  Driver: %s", event.DriverID)
		if event.DriverName != "" {
			fmt.Fprintf(w, " %q", event.DriverName)
		}
		fmt.Fprintln(w)
	}

	switch {
	case event.Scan != nil:
		formatScanDetails(w, event.Scan)
	case event.Lifecycle != nil:
		formatLifecycleDetails(w, event.Lifecycle)
	case event.Guard != nil:
		formatGuardDetails(w, event.Guard)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatScanDetails(w io.Writer, scan *log.ScanEvent) {
	fmt.Fprintf(w, "  Key: %s\n", scan.KeyName)
	if scan.Path != "" {
		fmt.Fprintf(w, "  Path: %s\n", scan.Path)
	}
	if scan.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", scan.Reason)
	}
}

func formatLifecycleDetails(w io.Writer, lc *log.LifecycleEvent) {
	if lc.Result != "" {
		fmt.Fprintf(w, "  Result: %s\n", lc.Result)
	}
	fmt.Fprintf(w, "  Refs: %d\n", lc.RefCount)
}

func formatGuardDetails(w io.Writer, g *log.GuardEvent) {
	fmt.Fprintf(w, "  Count: %d", g.Count)
	if g.Transition {
		fmt.Fprint(w, " (runtime transition)")
	}
	fmt.Fprintln(w)
	if g.Released > 0 {
		fmt.Fprintf(w, "  Released: %d\n", g.Released)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "scanner":
		return log.LayerScanner, nil
	case "table":
		return log.LayerTable, nil
	case "guard":
		return log.LayerGuard, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be scanner, table, or guard)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "scan":
		return log.CategoryScan, nil
	case "lifecycle":
		return log.CategoryLifecycle, nil
	case "guard":
		return log.CategoryGuard, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be scan, lifecycle, guard, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if filter.matches(event) {
			formatEvent(output, event)
		}
	}

	return nil
}
