package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger.
// Useful for development when you want to see lifecycle events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	if event.DriverID != "" {
		attrs = append(attrs, slog.String("driver_id", event.DriverID))
	}
	if event.DriverName != "" {
		attrs = append(attrs, slog.String("driver", event.DriverName))
	}

	switch {
	case event.Scan != nil:
		attrs = append(attrs,
			slog.String("key", event.Scan.KeyName),
			slog.Bool("accepted", event.Scan.Accepted),
		)
		if event.Scan.Path != "" {
			attrs = append(attrs, slog.String("path", event.Scan.Path))
		}
		if event.Scan.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Scan.Reason))
		}
	case event.Lifecycle != nil:
		attrs = append(attrs,
			slog.String("op", event.Lifecycle.Op.String()),
			slog.String("result", event.Lifecycle.Result),
			slog.Uint64("refs", uint64(event.Lifecycle.RefCount)),
		)
	case event.Guard != nil:
		attrs = append(attrs,
			slog.String("op", event.Guard.Op.String()),
			slog.Int("count", int(event.Guard.Count)),
			slog.Bool("transition", event.Guard.Transition),
		)
		if event.Guard.Released > 0 {
			attrs = append(attrs, slog.Int("released", event.Guard.Released))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "asio", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
