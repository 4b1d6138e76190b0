package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeySidebar    = "sidebar"
	KeyNodePath   = "node_path"
	KeyDocID      = "doc_id"
	KeyFormat     = "format"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyOutcome    = "outcome"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Sidebar(name string) slog.Attr   { return slog.String(KeySidebar, name) }
func NodePath(p string) slog.Attr     { return slog.String(KeyNodePath, p) }
func DocID(id string) slog.Attr       { return slog.String(KeyDocID, id) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Outcome(o string) slog.Attr      { return slog.String(KeyOutcome, o) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
