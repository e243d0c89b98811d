// Package logging provides the generation narrative sinks: a colourised console
// writer for interactive use and a structured slog adapter.
package logging
