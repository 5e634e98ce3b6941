package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sbaudio/asio-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByLayer    map[log.Layer]int
	EventsByCategory map[log.Category]int
	Sessions         map[string]int
	Drivers          map[string]*DriverStats
	Skipped          int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// DriverStats holds lifecycle statistics for a single driver.
type DriverStats struct {
	Name      string
	Created   int
	Erased    int
	Queries   int
	PeakRefs  uint32
	Errors    int
	FirstSeen time.Time
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:    make(map[log.Layer]int),
		EventsByCategory: make(map[log.Category]int),
		Sessions:         make(map[string]int),
		Drivers:          make(map[string]*DriverStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.Sessions[event.SessionID]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Scan != nil && !event.Scan.Accepted {
		s.Skipped++
	}
	if event.Error != nil {
		s.Errors++
	}

	if event.DriverID == "" {
		return
	}
	d, ok := s.Drivers[event.DriverID]
	if !ok {
		d = &DriverStats{FirstSeen: event.Timestamp}
		s.Drivers[event.DriverID] = d
	}
	if event.DriverName != "" {
		d.Name = event.DriverName
	}
	if event.Error != nil {
		d.Errors++
	}
	if lc := event.Lifecycle; lc != nil {
		switch {
		case lc.Op == log.OpQuery:
			d.Queries++
		case lc.Result == "CREATED":
			d.Created++
		case lc.Result == "ERASED":
			d.Erased++
		}
		if lc.Op != log.OpHandleRelease && lc.RefCount > d.PeakRefs {
			d.PeakRefs = lc.RefCount
		}
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== ASIO Host Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Sessions:     %d\n", len(stats.Sessions))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerScanner, log.LayerTable, log.LayerGuard} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryScan, log.CategoryLifecycle, log.CategoryGuard, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Drivers: %d\n", len(stats.Drivers))
	if len(stats.Drivers) > 0 {
		ids := make([]string, 0, len(stats.Drivers))
		for id := range stats.Drivers {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			return stats.Drivers[ids[i]].FirstSeen.Before(stats.Drivers[ids[j]].FirstSeen)
		})

		fmt.Fprintln(w)
		for _, id := range ids {
			d := stats.Drivers[id]
			fmt.Fprintf(w, "  %s", id)
			if d.Name != "" {
				fmt.Fprintf(w, " %q", d.Name)
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "      created %d, erased %d, queries %d, peak refs %d\n",
				d.Created, d.Erased, d.Queries, d.PeakRefs)
			if d.Errors > 0 {
				fmt.Fprintf(w, "      errors %d\n", d.Errors)
			}
		}
	}

	if stats.Skipped > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Skipped registry entries: %d\n", stats.Skipped)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
