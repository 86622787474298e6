package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/guestdump/internal/app"
	"github.com/five82/guestdump/internal/scan"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := newRootCmd().ExecuteContext(ctx)
	status := scan.ExitStatus(err)
	if status == 1 {
		fmt.Fprintf(os.Stderr, "guestdump: %v\n", err)
	}
	return status
}

func newRootCmd() *cobra.Command {
	var (
		opts    app.Options
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "guestdump",
		Short: "Show guest CPU state from a VirtualBox guru meditation",
		Long: `guestdump reads $HOME/VirtualBox VMs/RustOS/Logs/VBox.log, looks for a
guru meditation banner and prints the error summary followed by the guest
registers recorded at power off. Marker words (cafe, beef, dead, feed) on
4-character boundaries are highlighted.

Exit status is 0 when the log was read (with or without errors found) and 2
when the log does not have the expected layout.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.SetFlags(0)
			log.SetPrefix("guestdump: ")
			log.SetOutput(io.Discard)
			if verbose {
				log.SetOutput(cmd.ErrOrStderr())
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: ~/.config/guestdump/config.toml)")
	flags.StringVar(&opts.Color, "color", "", "color mode: auto, always, never (overrides config)")
	flags.BoolVarP(&opts.Pager, "pager", "p", false, "show the report in an interactive pager")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	return cmd
}
