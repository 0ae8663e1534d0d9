// Package logtail reads the tail of dexter's JSON log file.
//
// # Overview
//
// The TUI owns the terminal, so the only way to see what a session logged
// (load ids, durations, failed lookups) is the file written by
// internal/logging. Read scans the file once, keeping the last N lines in a
// ring buffer, and decodes each zap JSON line into an Entry. The `dexter
// logs` command prints the result as a table.
//
// # Line Format
//
// Lines are produced by zap's production encoder:
//
//	{"level":"info","ts":"2026-01-02T15:04:05.000Z","logger":"dexter","msg":"generation loaded","generation":1,"records":151}
//
// ts, level, logger, msg, caller, and stacktrace map to Entry fields; every
// other key lands in Entry.Fields. Lines that fail to decode are kept
// verbatim in Entry.Raw so nothing is silently dropped.
//
// # Missing Files
//
// A log file that does not exist yet (logging disabled, or no session has
// run) is not an error: Read returns no entries.
package logtail
