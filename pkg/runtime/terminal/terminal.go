package terminal

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/de-tools/block-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/block-atlas/pkg/services/config"
	"github.com/de-tools/block-atlas/pkg/services/pipeline"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	globals *commands.Globals
	runner  pipeline.Runner
	errOut  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Runner    pipeline.Runner
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner()
	}

	cli := &CLI{
		globals: &commands.Globals{},
		runner:  opts.Runner,
		errOut:  opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides the command line arguments, os.Args[1:] by default.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "block-atlas",
		Short:             "Weekly block size, occupancy and hash rate analysis",
		Long:              "Reads pool_blocksize.csv, blocksize.csv, conf_delay.csv and hash_rate.csv and prints one line per week.\nWithout a subcommand the report is printed.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVar(&cli.globals.ConfigPath, "config", "", "Path to a settings file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&cli.globals.DatasetsPath, "datasets", "", "Path to an ini file of dataset profiles")
	cmd.PersistentFlags().StringVar(&cli.globals.LogLevel, "log-level", "", "Log level written to stderr (overrides log_level)")

	reportCmd, rc := commands.NewReportCmd(cli.globals, cli.runner, func(buf *bytes.Buffer, res *pipeline.Result) error {
		return NewReporter(buf).Handle(res)
	})
	cmd.RunE = rc.Run

	cmd.AddCommand(reportCmd)
	cmd.AddCommand(commands.NewDatasetsCmd(cli.globals))

	return cmd
}

// setup loads settings and attaches the logger to the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.globals.ConfigPath)
	if err != nil {
		return err
	}
	if cli.globals.LogLevel != "" {
		settings.LogLevel = cli.globals.LogLevel
		if err := settings.Validate(); err != nil {
			return err
		}
	}
	cli.globals.Settings = settings

	logger := zerolog.New(cli.errOut).Level(settings.Level()).With().Timestamp().Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx))

	logger.Debug().
		Str("config", cli.globals.ConfigPath).
		Str("datasets", cli.globals.DatasetsPath).
		Str("data_dir", settings.DataDir).
		Msg("settings loaded")

	return nil
}
