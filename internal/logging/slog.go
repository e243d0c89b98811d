package logging

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/barrelgen/internal/logfields"
)

// Slog forwards generation messages to a structured logger.
// Log maps to info, Warn to warn, Error to error and Done to info with status=done.
type Slog struct {
	logger *slog.Logger
}

// NewSlog wraps logger; nil selects slog.Default().
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

func (s *Slog) Log(msg string) {
	s.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, logfields.Channel("log"))
}

func (s *Slog) Warn(msg string) {
	s.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, logfields.Channel("warn"))
}

func (s *Slog) Error(msg string) {
	s.logger.LogAttrs(context.Background(), slog.LevelError, msg, logfields.Channel("error"))
}

func (s *Slog) Done(msg string) {
	s.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, logfields.Channel("done"), logfields.Status("done"))
}
