package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/common/version"
)

const appName = "seedsweep"

// Version is set via build flag -ldflags -X main.Version
var (
	Version  string
	Branch   string
	Revision string
)

func init() {
	version.Version = Version
	version.Branch = Branch
	version.Revision = Revision
}

type globalOptions struct {
	ConfigFile      string `name:"config.file" help:"YAML configuration file to load."`
	ConfigExpandEnv bool   `name:"config.expand-env" help:"Expand environment variables in the configuration file."`
	LogLevel        string `name:"log.level" default:"info" enum:"debug,info,warn,error" help:"Only log messages at or above this level."`
	LogFormat       string `name:"log.format" default:"logfmt" enum:"logfmt,json" help:"Log output format."`

	Stdout io.Writer `kong:"-"`
}

type cliArgs struct {
	globalOptions

	Sweep   sweepCmd   `cmd:"" help:"Generate seeds over the sweep and print the values that collide."`
	Seed    seedCmd    `cmd:"" help:"Print the key, digest and seed of a single parameter triple."`
	Compare compareCmd `cmd:"" help:"Run the sweep with several hash algorithms and compare collision counts."`
	Verify  verifyCmd  `cmd:"" help:"Run the sweep twice and fail if the reports differ."`
	Version versionCmd `cmd:"" help:"Print version information."`
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name(appName),
		kong.Description("Deterministic seed generation and collision analysis"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
}

func main() {
	var cli cliArgs
	ctx := kong.Parse(&cli, kongOptions()...)
	cli.Stdout = os.Stdout
	err := ctx.Run(&cli.globalOptions)
	ctx.FatalIfErrorf(err)
}

type versionCmd struct{}

func (cmd *versionCmd) Run(opts *globalOptions) error {
	_, err := fmt.Fprintln(opts.Stdout, version.Print(appName))
	return err
}
