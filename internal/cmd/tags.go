package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vacgen/vacgen/internal/codegen/generator"
	"github.com/vacgen/vacgen/internal/registry"
)

type Tags struct {
	Input     string `arg:"" help:"Device table (CSV)" type:"existingfile"`
	Selection `embed:""`

	out io.Writer
}

// Run is called by Kong when the tags command is executed.
func (c *Tags) Run(logger *slog.Logger) error {
	filter, err := c.Filter()
	if err != nil {
		return err
	}
	gen := generator.New(registry.Builtin(), logger, nil, generator.Options{Filter: filter})
	rows, err := gen.Load(c.Input)
	if err != nil {
		return err
	}
	supported, unsupported := gen.Tags(rows)

	w := c.out
	if w == nil {
		w = os.Stdout
	}
	printTags(w, "supported", supported)
	printTags(w, "unsupported", unsupported)
	if len(unsupported) > 0 {
		logger.Warn("Input uses unsupported device types", "count", len(unsupported))
	}
	return nil
}

func printTags(w io.Writer, title string, tags []string) {
	_, _ = fmt.Fprintf(w, "%s (%d):\n", title, len(tags))
	for _, t := range tags {
		_, _ = fmt.Fprintf(w, "  %s\n", t)
	}
}
