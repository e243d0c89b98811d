package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStrategy   = "strategy"
	KeyPath       = "path"
	KeyBarrel     = "barrel"
	KeyExports    = "exports"
	KeyChannel    = "channel"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyConfig     = "config"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Strategy(s string) slog.Attr      { return slog.String(KeyStrategy, s) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Barrel(name string) slog.Attr     { return slog.String(KeyBarrel, name) }
func Exports(n int) slog.Attr          { return slog.Int(KeyExports, n) }
func Channel(c string) slog.Attr       { return slog.String(KeyChannel, c) }
func Status(s string) slog.Attr        { return slog.String(KeyStatus, s) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func ConfigPath(p string) slog.Attr    { return slog.String(KeyConfig, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
