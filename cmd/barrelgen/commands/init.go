package commands

import (
	"fmt"

	"git.home.luguber.info/inful/barrelgen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Path  string `arg:"" optional:"" type:"path" default:"barrelgen.yaml" help:"Where to write the configuration file"`
	Force bool   `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global) error {
	_, _ = fmt.Fprintf(g.Stdout, "Writing configuration to %s\n", i.Path)
	if err := config.Init(i.Path, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(g.Stdout, "initialized successfully")
	return nil
}
