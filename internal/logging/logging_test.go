package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolePlain(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Log("Generation started")
	c.Warn("careful")
	c.Error("boom")
	c.Done("Generation finished")

	assert.Equal(t, "Generation started\ncareful\nboom\nGeneration finished\n", buf.String())
}

func TestConsoleColored(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWithColor(&buf, true)

	c.Error("boom")
	c.Log("plain")

	out := buf.String()
	assert.Contains(t, out, "\x1b[31mboom\x1b[0m\n")
	assert.Contains(t, out, "plain\n")
	assert.NotContains(t, out, "\x1b[31mplain")
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSlog(logger)

	s.Log("Exporting /ws/c - found 2 Dart files")
	s.Warn("w")
	s.Error("e")
	s.Done("Generation finished")

	out := buf.String()
	assert.Contains(t, out, `level=INFO msg="Exporting /ws/c - found 2 Dart files" channel=log`)
	assert.Contains(t, out, "level=WARN msg=w channel=warn")
	assert.Contains(t, out, "level=ERROR msg=e channel=error")
	assert.Contains(t, out, `msg="Generation finished" channel=done status=done`)
}
