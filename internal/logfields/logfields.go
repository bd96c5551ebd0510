package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyApp        = "app"
	KeyPath       = "path"
	KeyTag        = "tag"
	KeyRun        = "run"
	KeyPassID     = "pass_id"
	KeyPages      = "pages"
	KeyDocuments  = "documents"
	KeyDurationMS = "duration_ms"
	KeyTemplate   = "template"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func App(name string) slog.Attr       { return slog.String(KeyApp, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Tag(t string) slog.Attr          { return slog.String(KeyTag, t) }
func Run(r string) slog.Attr          { return slog.String(KeyRun, r) }
func PassID(id string) slog.Attr      { return slog.String(KeyPassID, id) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Documents(n int) slog.Attr       { return slog.Int(KeyDocuments, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Template(name string) slog.Attr  { return slog.String(KeyTemplate, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
