package generation

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/barrelgen/internal/barrel"
	"git.home.luguber.info/inful/barrelgen/internal/metrics"
)

// Options tune a Session. Zero values are replaced by defaults in New.
type Options struct {
	// LogTimestamps prefixes every narrative line with "[YYYY-MM-DD HH:MM:SS] ".
	LogTimestamps bool
	// FS is used for every read, stat and write.
	FS barrel.FileSystem
	// Recorder receives run metrics.
	Recorder metrics.Recorder
	// Diagnostics receives debug-level structured events, separate from the narrative.
	Diagnostics *slog.Logger
	Now         func() time.Time
	NewRunID    func() string
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		LogTimestamps: true,
		FS:            barrel.OSFileSystem{},
		Recorder:      metrics.NoopRecorder{},
		Diagnostics:   slog.Default(),
		Now:           time.Now,
		NewRunID:      uuid.NewString,
	}
}

// WithoutTimestamps disables the timestamp prefix.
func WithoutTimestamps() Option {
	return func(o *Options) { o.LogTimestamps = false }
}

// WithFileSystem routes filesystem access through fsys.
func WithFileSystem(fsys barrel.FileSystem) Option {
	return func(o *Options) {
		if fsys != nil {
			o.FS = fsys
		}
	}
}

// WithRecorder installs a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithDiagnostics sets the structured diagnostics logger.
func WithDiagnostics(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Diagnostics = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}
