package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"hsmanager/internal/config"
	"hsmanager/internal/profile"
	"hsmanager/internal/shell/commands"
	"hsmanager/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeNotFound indicates that a named server profile does not exist.
	ExitCodeNotFound = 2
	// ExitCodeStorage indicates that the profiles file could not be read or written.
	ExitCodeStorage = 3
)

// author is shown by the author command and the banner.
var author = "unknown"

// rootOptions holds the global flags and the configuration resolved from them.
type rootOptions struct {
	configPath   string
	profilesPath string
	debug        bool
	legacy       bool

	cfg config.Config
}

// rootCmd represents the base command for the hsmanager application.
// Without a subcommand it starts the interactive shell.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hsmanager",
		Short: "Manage local game server profiles",
		Long: `hsmanager keeps a list of server profiles (name, version, install path and
launch arguments) in a JSON file and lets you browse them from an
interactive shell.

Run without a subcommand to start the shell. The profile subcommands
manage the same file non-interactively.

Configuration precedence (highest to lowest):
  1. --profiles, --legacy and --debug flags
  2. HSMANAGER_PROFILES, HSMANAGER_LOG_LEVEL and HSMANAGER_COLOR environment variables
  3. configuration file (~/.config/hsmanager/config.yaml or --config)
  4. built-in defaults`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage:  true,
		// Errors are printed by Execute so configuration errors can show their details.
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(`{{printf "hsmanager version %s\n" .Version}}`)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/hsmanager/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.profilesPath, "profiles", "", "profiles JSON file (env: "+config.EnvProfilesFile+")")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.legacy, "legacy", false, "Emulate earlier releases: missing names hit the first profile, no 'back' in the inspect session")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newShellCmd(opts))
	cmd.AddCommand(newProfileCmd(opts))
	return cmd
}

// resolve builds the effective configuration and initializes logging.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	if err := o.initEarlyLogging(cmd); err != nil {
		return err
	}

	path := o.configPath
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	if err := config.ApplyEnv(&cfg, nil); err != nil {
		return err
	}
	if o.legacy {
		cfg.ApplyLegacy()
	}
	if o.profilesPath != "" {
		cfg.Storage.ProfilesFile = o.profilesPath
	}
	if o.debug {
		cfg.Logging.Level = logging.LevelDebug.String()
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.InitForCLI(cfg.LogLevel(), cmd.ErrOrStderr())
	logging.Debug("CLI", "Using profiles file %s (policy %s)", cfg.Storage.ProfilesFile, cfg.MissingPolicy())

	o.cfg = cfg
	return nil
}

// initEarlyLogging sets up logging from the flags and environment alone, so
// that loading the configuration file can already be traced.
func (o *rootOptions) initEarlyLogging(cmd *cobra.Command) error {
	early := config.GetDefaultConfig()
	if err := config.ApplyEnv(&early, nil); err != nil {
		return err
	}
	if o.debug {
		early.Logging.Level = logging.LevelDebug.String()
	}
	logging.InitForCLI(early.LogLevel(), cmd.ErrOrStderr())
	return nil
}

// buildInfo returns the version and author shown by the shell.
func buildInfo(cmd *cobra.Command) commands.BuildInfo {
	return commands.BuildInfo{
		Version: cmd.Root().Version,
		Author:  author,
	}
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// SetAuthor sets the author shown by the shell.
func SetAuthor(a string) {
	author = a
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(getExitCode(err))
	}
}

// reportError prints err. Configuration errors get the detailed form with
// the cause and suggestions.
func reportError(w io.Writer, err error) {
	var cfgErr config.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(w, "Error:", cfgErr.DetailedError())
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if errors.Is(err, profile.ErrNotFound) {
		return ExitCodeNotFound
	}

	var storageErr *profile.StorageError
	if errors.As(err, &storageErr) {
		return ExitCodeStorage
	}

	return ExitCodeError
}
