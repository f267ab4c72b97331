package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyFile       = "file"
	KeyGroup      = "group"
	KeyRegions    = "regions"
	KeyFixtures   = "fixtures"
	KeyDurationMS = "duration_ms"
	KeyBackup     = "backup"
	KeyCorpus     = "corpus"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func Group(name string) slog.Attr     { return slog.String(KeyGroup, name) }
func Regions(n int) slog.Attr         { return slog.Int(KeyRegions, n) }
func Fixtures(n int) slog.Attr        { return slog.Int(KeyFixtures, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Backup(path string) slog.Attr    { return slog.String(KeyBackup, path) }
func Corpus(root string) slog.Attr    { return slog.String(KeyCorpus, root) }
func Error(err error) slog.Attr {
	if err == nil { return slog.String(KeyError, "") }
	return slog.String(KeyError, err.Error())
}
