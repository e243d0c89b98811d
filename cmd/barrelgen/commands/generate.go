package commands

import (
	"fmt"
	"os"
	"strings"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/barrelgen/internal/barrel"
	"git.home.luguber.info/inful/barrelgen/internal/config"
	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
	"git.home.luguber.info/inful/barrelgen/internal/generation"
	"git.home.luguber.info/inful/barrelgen/internal/logfields"
	"git.home.luguber.info/inful/barrelgen/internal/logging"
	"git.home.luguber.info/inful/barrelgen/internal/metrics"
)

var successMessages = map[generation.Strategy]string{
	generation.Regular:           "Successfully generated barrel file for {path}",
	generation.Recursive:         "Successfully generated recursive barrel files for {path}",
	generation.RegularSubfolders: "Successfully generated barrel file with subfolders for {path}",
}

// GenerateCmd implements the default 'generate' command.
type GenerateCmd struct {
	Directory string `arg:"" type:"path" help:"Target directory for barrel file generation"`

	Subfolders bool   `short:"s" help:"Include subfolders in the barrel file"`
	Recursive  bool   `short:"r" help:"Generate barrel files recursively for all nested directories"`
	Type       string `short:"t" placeholder:"TYPE" help:"Generation type: regular, recursive or regular_subfolders (overridden by -r/-s)"`

	Config string `short:"c" type:"path" env:"BARRELGEN_CONFIG" help:"Path to configuration file (YAML or JSON); replaces the option flags"`

	DefaultBarrelName string   `short:"n" name:"default-barrel-name" help:"Default name for barrel files"`
	ExcludedDirs      []string `name:"excluded-dirs" help:"Comma-separated list of directory globs to exclude"`
	ExcludedFiles     []string `name:"excluded-files" help:"Comma-separated list of file globs to exclude"`
	ExcludeFreezed    bool     `help:"Exclude freezed files"`
	ExcludeGenerated  bool     `help:"Exclude generated files"`
	SkipEmpty         bool     `help:"Skip directories with no files"`
	AppendFolderName  bool     `help:"Append folder name to barrel file name"`
	PrependFolderName bool     `help:"Prepend folder name to barrel file name"`
	PrependPackage    bool     `help:"Prepend package name to exports in lib folder"`

	NoTimestamps bool   `help:"Do not prefix log lines with timestamps"`
	LogFormat    string `enum:"console,slog" default:"console" help:"Narrative output format (console, slog)"`
	MetricsFile  string `type:"path" help:"Write Prometheus metrics in textfile format to this path"`
}

func (c *GenerateCmd) Run(g *Global) error {
	strategy, err := c.strategy()
	if err != nil {
		return err
	}

	if _, err := os.Stat(c.Directory); err != nil {
		return errors.ValidationError("Directory does not exist: " + c.Directory).
			WithContext("path", c.Directory).
			Build()
	}

	cfg, err := c.loadConfig(g)
	if err != nil {
		return err
	}

	registry := prom.NewRegistry()
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if c.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	opts := []generation.Option{
		generation.WithRecorder(recorder),
		generation.WithDiagnostics(g.Logger),
	}
	if c.NoTimestamps {
		opts = append(opts, generation.WithoutTimestamps())
	}

	session := generation.New(cfg, c.narrative(g), opts...)
	_, runErr := generation.Run(session, generation.StartParams{
		FSPath: c.Directory,
		Path:   barrel.ToPosixPath(c.Directory),
		Type:   strategy,
	})

	if c.MetricsFile != "" {
		if err := metrics.WriteTextfile(c.MetricsFile, registry); err != nil {
			g.Logger.Warn("Failed to write metrics file", logfields.Path(c.MetricsFile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	_, _ = fmt.Fprintln(g.Stdout, strings.ReplaceAll(successMessages[strategy], "{path}", c.Directory))
	return nil
}

// strategy resolves the generation type; -r wins over -s, both win over --type.
func (c *GenerateCmd) strategy() (generation.Strategy, error) {
	switch {
	case c.Recursive:
		return generation.Recursive, nil
	case c.Subfolders:
		return generation.RegularSubfolders, nil
	case c.Type != "":
		return generation.ParseStrategy(c.Type)
	default:
		return generation.Regular, nil
	}
}

// loadConfig reads --config when given, otherwise builds the configuration from flags.
func (c *GenerateCmd) loadConfig(g *Global) (config.Config, error) {
	if c.Config != "" {
		cfg, err := config.Load(c.Config)
		if err != nil {
			return config.Config{}, err
		}
		g.Logger.Debug("Loaded configuration file", logfields.ConfigPath(c.Config))
		return *cfg, nil
	}

	cfg := config.Config{
		AppendFolderName:          c.AppendFolderName,
		PrependFolderName:         c.PrependFolderName,
		DefaultBarrelName:         strings.TrimSpace(c.DefaultBarrelName),
		ExcludeDirList:            c.ExcludedDirs,
		ExcludeFileList:           c.ExcludedFiles,
		ExcludeFreezed:            c.ExcludeFreezed,
		ExcludeGenerated:          c.ExcludeGenerated,
		PrependPackageToLibExport: c.PrependPackage,
		SkipEmpty:                 c.SkipEmpty,
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (c *GenerateCmd) narrative(g *Global) generation.Logger {
	if c.LogFormat == "slog" {
		return logging.NewSlog(g.Logger)
	}
	return logging.NewConsole(g.Stdout)
}
