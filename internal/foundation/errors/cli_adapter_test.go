package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("Select a folder from the workspace").Build(), expected: 2},
		{name: "config", err: ConfigError("bad pattern").Build(), expected: 7},
		{name: "filesystem", err: FileSystemError("write barrel file").Build(), expected: 11},
		{name: "package", err: PackageError("resolve package").Build(), expected: 11},
		{name: "state", err: StateError("not initialised").Build(), expected: 10},
		{name: "unclassified error", err: errors.New("unknown error"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name    string
		verbose bool
		err     error
		want    string
	}{
		{name: "nil error", err: nil, want: ""},
		{
			name: "validation shows message only",
			err:  ValidationError("Select a folder from the workspace").WithCause(cause).Build(),
			want: "Error: Select a folder from the workspace",
		},
		{
			name: "filesystem shows message and cause",
			err:  WrapError(cause, CategoryFileSystem, "write barrel file").Build(),
			want: "Error: write barrel file: permission denied",
		},
		{
			name:    "verbose shows full classification",
			verbose: true,
			err:     WrapError(cause, CategoryFileSystem, "write barrel file").Build(),
			want:    "[filesystem:error] write barrel file: permission denied",
		},
		{name: "unclassified error", err: errors.New("boom"), want: "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewCLIErrorAdapter(tt.verbose, slog.Default())
			assert.Equal(t, tt.want, adapter.FormatError(tt.err))
		})
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	exitCode := -1
	adapter := NewCLIErrorAdapter(true, logger).
		WithOutput(&out).
		WithExit(func(code int) { exitCode = code })

	adapter.HandleError(WrapError(errors.New("disk full"), CategoryFileSystem, "write barrel file").
		WithContext("path", "/x/x.dart").
		Build())

	require.Equal(t, 11, exitCode)
	assert.Contains(t, out.String(), "write barrel file: disk full")
	assert.Contains(t, logs.String(), "category=filesystem")
	assert.Contains(t, logs.String(), "path=/x/x.dart")

	exitCode = -1
	adapter.HandleError(nil)
	assert.Equal(t, -1, exitCode, "nil errors must not exit")
}
