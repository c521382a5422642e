// Package cli wires the guarded operations to the safebak command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"safebak/internal/config"
	"safebak/internal/core"
	"safebak/internal/logging"
)

// Version is reported by --version.
var Version = "0.1.0"

// annotationConfigOptional marks commands that may run before the file named
// by --config exists.
const annotationConfigOptional = "safebak/config-optional"

// newRecorder builds the recorder each invocation reports operation outcomes to.
var newRecorder = func(logger *logging.AppLogger) core.Recorder {
	return logging.NewEventRecorder(logger)
}

// App carries the state shared by the subcommands of one invocation.
type App struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logFile    string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *logging.AppLogger
	sink   io.Closer
	runner *core.Runner
}

// NewApp creates an App writing command output to stdout and error messages to stderr.
func NewApp(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr}
}

// RootCommand creates and returns the root command
func RootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "safebak",
		Short: "Guarded single-file backup, restore and delete",
		Long: `safebak backs up, restores and deletes one regular file at a time.

Paths are made absolute and cleaned before use. Symbolic links are refused,
backup files must end in .bak, and an existing destination is never overwritten.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/safebak/config.yaml)")
	flags.StringVar(&app.logFile, "log-file", "", "append-only log file (default $XDG_STATE_HOME/safebak/safebak.log)")
	flags.StringVar(&app.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&app.logFormat, "log-format", "", "log format: text, logfmt, json")

	rootCmd.AddCommand(
		backupCommand(app),
		restoreCommand(app),
		deleteCommand(app),
		configCommand(app),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and opens the log sink.
// It runs once, before any subcommand.
func (a *App) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case a.configPath != "" && cmd.Annotations[annotationConfigOptional] != "" && !fileExists(a.configPath):
		defaults := config.DefaultConfig()
		cfg = &defaults
	case a.configPath != "":
		cfg, err = config.LoadFrom(a.configPath)
	default:
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, sink, err := logging.Open(cfg.LoggingOptions())
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	a.cfg = cfg
	a.logger = logger
	a.sink = sink
	a.runner = core.NewRunner(newRecorder(logger))
	return nil
}

func fileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Close releases the log sink opened by setup.
func (a *App) Close() error {
	if a.sink == nil {
		return nil
	}
	err := a.sink.Close()
	a.sink = nil
	logging.SetDefault(nil)
	return err
}

// Execute runs the command line described by args and returns the process
// exit code. A panic is logged and reported as a failure.
func Execute(args []string, stdout, stderr io.Writer) (code int) {
	app := NewApp(stdout, stderr)
	defer app.Close()

	defer func() {
		if r := recover(); r != nil {
			logging.Error("Panic occurred", "panic", r, "stack", string(debug.Stack()))
			printError(stderr, fmt.Errorf("internal error: %v", r))
			code = ExitFailure
		}
	}()

	cmd := RootCommand(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		printError(stderr, err)
		return ExitCode(err)
	}
	return ExitOK
}
