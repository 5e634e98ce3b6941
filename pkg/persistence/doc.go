// Package persistence keeps host state between runs.
//
// The state file records every driver seen by past scans and the driver the
// user last selected, so the asio-host command can report drivers that were
// installed or removed since the previous run.
package persistence
