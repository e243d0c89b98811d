package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
	"git.home.luguber.info/inful/barrelgen/internal/version"
)

// Global carries process-wide state to commands.
type Global struct {
	Logger  *slog.Logger
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate barrel files for a directory (default command)"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Verbose = c.Verbose
	g.Logger = slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

type exitSignal struct{ code int }

// Execute parses args, runs the selected command and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) (code int) {
	var cli CLI
	global := &Global{
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
		Stdout: stdout,
		Stderr: stderr,
	}

	parser, err := kong.New(&cli,
		kong.Name("barrelgen"),
		kong.Description("Generate Dart barrel files for a directory tree."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitSignal{code: c}) }),
		kong.Bind(global),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "barrelgen: %v\n", err)
		return 1
	}

	// --help and --version exit through kong.Exit.
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}
			code = sig.code
		}
	}()

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	errors.NewCLIErrorAdapter(global.Verbose, global.Logger).
		WithOutput(stderr).
		WithExit(func(c int) { code = c }).
		HandleError(ctx.Run())
	return code
}
