package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/vacgen/vacgen/internal/codegen/common"
	"github.com/vacgen/vacgen/internal/config"
	"github.com/vacgen/vacgen/internal/configpaths"
	"github.com/vacgen/vacgen/internal/log"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("vacgen"),
		kong.Description("Vacuum system PLC and simulation code generator"),
		kong.UsageOnError(),
		kong.Vars{"version": common.MustVersion()},
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logging, err := log.Setup(log.Options{
		Level:        cli.Log.Level,
		File:         cli.Log.File,
		Format:       cli.Log.Format,
		FragmentFile: cli.Log.FragmentFile,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = logging.Close() }()

	ctx.Bind(logging.Logger)
	ctx.BindTo(logging.Fragments, (*log.FragmentLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("VACGEN_CONFIG")
}
