// Package cli provides the command-line interface for gcat
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gcat/gcat/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI encapsulates the command tree and its settings without globals
type CLI struct {
	config   *Config
	rootCmd  *cobra.Command
	viper    *viper.Viper
	logger   logger.Logger
	console  *logger.ConsoleLogger
	output   io.Writer
	errorOut io.Writer
	logFile  io.Closer

	// running is set once a command body starts; errors raised before
	// that are usage errors.
	running bool
}

// Exit statuses
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type configError struct{ error }

func (e configError) Unwrap() error { return e.error }

// NewCLI creates a new CLI instance with the given configuration
func NewCLI(config *Config) *CLI {
	return NewCLIWithOutput(config, os.Stdout, os.Stderr)
}

// NewCLIWithOutput creates a CLI with custom output writers (for testing)
func NewCLIWithOutput(config *Config, output, errorOut io.Writer) *CLI {
	if config == nil {
		config = NewConfig()
	}

	cli := &CLI{
		config:   config,
		viper:    newViper(),
		logger:   logger.Discard(),
		output:   output,
		errorOut: errorOut,
	}
	cli.console = logger.NewConsoleLogger(output, errorOut)

	cli.setupCommands()
	return cli
}

// Execute runs the CLI with the given arguments
func (c *CLI) Execute(args []string) error {
	return c.ExecuteContext(context.Background(), args)
}

// ExecuteContext runs the CLI with context support
func (c *CLI) ExecuteContext(ctx context.Context, args []string) error {
	c.running = false
	c.rootCmd.SetArgs(args)
	defer c.closeLogFile()
	return c.rootCmd.ExecuteContext(ctx)
}

func (c *CLI) closeLogFile() {
	if c.logFile == nil {
		return
	}
	if err := c.logFile.Close(); err != nil {
		fmt.Fprintf(c.errorOut, "closing log file: %v\n", err)
	}
	c.logFile = nil
}

// ExitCode maps the error of the last execution to a process exit status:
// 2 for invalid usage (unknown flags, violated flag groups), 1 otherwise.
func (c *CLI) ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cfgErr configError
	if !c.running && !errors.As(err, &cfgErr) {
		return ExitUsage
	}
	return ExitError
}

// run marks the start of a command body
func (c *CLI) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.running = true
		return fn(cmd, args)
	}
}

func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:   "gcat",
		Short: "Grid convergence analysis toolkit",
		Long: `📐 gcat - Grid Convergence Index analysis for three-grid refinement studies

gcat computes the apparent order of convergence, Richardson extrapolation and
the Grid Convergence Index of scalar quantities solved on a fine, a medium and
a coarse grid.`,

		PersistentPreRunE: c.initializeConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		}),
	}
	c.rootCmd.SetOut(c.output)
	c.rootCmd.SetErr(c.errorOut)

	c.setupFlags()

	c.rootCmd.Version = c.config.Version
	c.rootCmd.SetVersionTemplate("📐 gcat v{{.Version}}\n")

	c.rootCmd.AddCommand(c.newCheckCmd())
	c.rootCmd.AddCommand(c.newAnalyzeCmd())
	c.rootCmd.AddCommand(c.newValidateCmd())
	c.rootCmd.AddCommand(c.newInitCmd())
	c.rootCmd.AddCommand(c.newVersionCmd())
}

func (c *CLI) setupFlags() {
	flags := c.rootCmd.PersistentFlags()

	flags.StringVar(&c.config.ConfigFile, "config", "", "config file (default: gcat.yaml in the project root)")
	flags.StringVar(&c.config.ProjectRoot, "root", ".", "project root directory")
	flags.StringVarP(&c.config.Verbosity, keyVerbosity, "v", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&c.config.LogFile, keyLogFile, "", "also append log entries to this file")
	flags.BoolVar(&c.config.NoColor, "no-color", false, "disable colored output")

	// Persistent flags are bound once; command flags are bound when the
	// command runs.
	_ = c.viper.BindPFlag(keyVerbosity, flags.Lookup(keyVerbosity))
	_ = c.viper.BindPFlag(keyLogFile, flags.Lookup(keyLogFile))
}

func (c *CLI) initializeConfig(cmd *cobra.Command, args []string) error {
	if c.config.ConfigFile != "" {
		c.viper.SetConfigFile(c.config.ConfigFile)
	} else {
		c.viper.AddConfigPath(c.config.ProjectRoot)
		c.viper.SetConfigName("gcat")
	}

	if err := c.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.config.ConfigFile != "" || !errors.As(err, &notFound) {
			return configError{fmt.Errorf("failed to read config: %w", err)}
		}
	}

	if c.config.NoColor {
		color.NoColor = true
	}

	c.closeLogFile()
	log, file, err := logger.CreateLogger(c.viper.GetString(keyLogFile), c.viper.GetString(keyVerbosity), c.errorOut)
	if err != nil {
		return configError{err}
	}
	c.logger, c.logFile = log, file
	if used := c.viper.ConfigFileUsed(); used != "" {
		c.logger.Debug("Using config file", logger.WithField("file", used))
	}
	return nil
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(c.output, "📐 gcat v%s\n", c.versionString())
			return err
		}),
	}
}

func (c *CLI) versionString() string {
	if c.config.Version == "" {
		return "dev"
	}
	return c.config.Version
}

// Helper methods for user facing messages

func (c *CLI) printSuccess(message string) {
	c.console.Success(message)
}

func (c *CLI) printInfo(message string) {
	c.console.Info(message)
}

func (c *CLI) printWarning(message string) {
	c.console.Warn(message)
}

// Run builds a CLI for the given version, executes it with the process
// arguments and returns the exit status. Errors are printed in red on
// stderr.
func Run(version string) int {
	config := NewConfig()
	config.Version = version
	cli := NewCLI(config)

	err := cli.Execute(os.Args[1:])
	if err != nil {
		cli.console.Error(err.Error())
	}
	return cli.ExitCode(err)
}
