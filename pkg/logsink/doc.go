// Package logsink is the append-only output stream of the demonstrations.
//
// Each record is either a plain value (an item number, a "Waiting ..." line) or
// a styled message marking the beginning of a batch, its completion, or the
// combined result of a strategy. Writer renders records to a terminal, Slog
// forwards them to a structured logger and Recorder keeps them for tests.
package logsink
