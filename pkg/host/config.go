package host

import (
	"log/slog"

	"github.com/sbaudio/asio-go/pkg/log"
)

// DefaultLockStripes is the default number of per-identity lock stripes.
const DefaultLockStripes = 32

// Config configures a Host.
type Config struct {
	// Logger receives operational logs. Nil disables logging.
	Logger *slog.Logger

	// EventLogger receives lifecycle and guard events. Nil disables
	// event logging.
	EventLogger log.Logger

	// SessionID is stamped on every event. Empty generates a random UUID.
	SessionID string

	// LockStripes is the number of mutexes that serialize operations on the
	// same identity. Zero or less uses DefaultLockStripes.
	LockStripes int
}

// DefaultConfig returns the default host configuration.
func DefaultConfig() Config {
	return Config{
		Logger:      slog.Default(),
		LockStripes: DefaultLockStripes,
	}
}
