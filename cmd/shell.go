package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hsmanager/internal/shell"
	"hsmanager/pkg/logging"

	"github.com/spf13/cobra"
)

func newShellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Long: `Start the interactive hsmanager shell. This is also what runs when
hsmanager is started without a subcommand.

Commands:
  help          show the command list
  version       show the version
  author        show the author
  clear         clear the screen and show the banner
  server-edit   browse the stored server profiles by name
  exit          leave the shell

Inside server-edit every line is looked up as a profile name. 'back' or
Ctrl+C returns to the main prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	cfg := opts.cfg
	out := cmd.OutOrStdout()

	outFile, _ := out.(*os.File)
	logger := shell.NewLoggerWithWriter(opts.debug, shell.DetectColor(cfg.Shell.Color, outFile), out)

	sh := shell.New(logger, cfg.ProfileStore(), shell.Options{
		Prompt:          cfg.Shell.Prompt,
		InspectBack:     cfg.Shell.InspectBack,
		FatalLoadErrors: cfg.Shell.FatalLoadErrors,
		MissingPolicy:   cfg.MissingPolicy(),
		Info:            buildInfo(cmd),
	})

	reader, closeReader, err := shell.OpenReader(sh, cmd.InOrStdin(), out, shell.TerminalOptions{
		Prompt:      cfg.Shell.Prompt,
		HistoryFile: cfg.Shell.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := closeReader(); err != nil {
			logging.Warn("CLI", "Failed to close terminal: %v", err)
		}
	}()

	if _, plain := reader.(*shell.PlainReader); !plain {
		sh.PrintBanner()
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM)
	defer stop()

	return sh.Run(ctx, reader)
}
