package cmd

import (
	"log/slog"

	"github.com/vacgen/vacgen/internal/codegen/generator"
	"github.com/vacgen/vacgen/internal/log"
	"github.com/vacgen/vacgen/internal/output"
	"github.com/vacgen/vacgen/internal/registry"
)

type Generate struct {
	Input     string   `arg:"" help:"Device table (CSV)" type:"existingfile"`
	Output    string   `help:"Output directory" short:"o" default:"./gen" env:"VACGEN_OUTPUT"`
	Side      []string `help:"Sides to generate" default:"plc,sim" enum:"plc,sim" sep:"," env:"VACGEN_SIDE"`
	Xref      string   `help:"Cross-reference map format" default:"yaml" enum:"yaml,json,toml" env:"VACGEN_XREF"`
	Manifest  bool     `help:"Write gen.manifest.yaml with file digests" env:"VACGEN_MANIFEST"`
	Selection `embed:""`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger, fragments log.FragmentLogger) error {
	logger.Info("Starting code generation", "input", c.Input, "output", c.Output, "sides", c.Side)

	filter, err := c.Filter()
	if err != nil {
		return err
	}
	gen := generator.New(registry.Builtin(), logger, fragments, generator.Options{
		Sides:      c.Side,
		XrefFormat: c.Xref,
		Manifest:   c.Manifest,
		Filter:     filter,
	})

	rows, err := gen.Load(c.Input)
	if err != nil {
		return err
	}
	files, err := gen.Generate(rows)
	if err != nil {
		return err
	}
	if err := output.NewWriter(c.Output, logger).Write(files); err != nil {
		return err
	}

	logger.Info("Code generation complete", "output", c.Output, "files", len(files))
	return nil
}
