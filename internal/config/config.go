package config

import (
	"github.com/alecthomas/kong"

	"github.com/vacgen/vacgen/internal/cmd"
)

// CLI is the root command tree.
type CLI struct {
	ConfigFile string           `name:"config" help:"Path to a JSON, YAML or TOML configuration file" type:"path" env:"VACGEN_CONFIG"`
	Version    kong.VersionFlag `help:"Print the version and exit"`
	Log        Log              `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate control and simulation code from a device table"`
	Tags      cmd.Tags          `cmd:"" help:"List the device types of a table as supported or unsupported"`
	Configure cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}

type Log struct {
	Level        string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"VACGEN_LOG_LEVEL"`
	File         string `help:"Also write logs to this file" env:"VACGEN_LOG_FILE"`
	Format       string `help:"Log format; auto picks text on a terminal and json otherwise" default:"auto" enum:"text,json,auto" env:"VACGEN_LOG_FORMAT"`
	FragmentFile string `help:"Write every rendered code fragment to this file" env:"VACGEN_LOG_FRAGMENT_FILE"`
}
