// Package cli implements the tplay command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/tplay/internal/config"
	"github.com/llehouerou/tplay/internal/playlist"
)

// Params holds the parsed command line.
type Params struct {
	Path    string
	Verbose bool
	LogFile string
	Config  string
	Test    bool
}

// Command returns the root cobra command.
func Command() *cobra.Command {
	var p Params

	cmd := &cobra.Command{
		Use:   config.AppName + " [flags] <path>",
		Short: "Play a directory or file of music in the terminal",
		Long: "Play every supported audio file under <path> from a vim-style track list.\n\n" +
			"Supported formats: " + strings.Join(playlist.SupportedExtensions(), ", "),
		Version:       Version(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Path = args[0]
			if code := Run(cmd.Context(), p, cmd.ErrOrStderr()); code != 0 {
				return errReported
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&p.Verbose, "verbose", "v", false, "enable debug logging to the log file")
	f.StringVar(&p.LogFile, "log-file", "", "log file path (default $XDG_STATE_HOME/tplay/tplay.log)")
	f.StringVar(&p.Config, "config", "", "config file path (default $XDG_CONFIG_HOME/tplay/config.toml)")
	f.BoolVar(&p.Test, "test", false, "smoke test: load, play the first track for 500ms, stop, exit")

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	return execute(ctx, Command())
}

func execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", config.AppName, err)
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		return 1
	}
}

// Version reports the module version from the build info.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}
	if bi.Main.Version == "" {
		return "unknown-(no version)"
	}
	return bi.Main.Version
}

// Run executes tplay with p and returns the exit code. Fatal errors are
// written to stderr.
func Run(ctx context.Context, p Params, stderr io.Writer) int {
	if ctx == nil {
		ctx = context.Background()
	}
	return report(run(ctx, p), stderr)
}

// report writes a fatal error to stderr and maps it to an exit code.
func report(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
	return 1
}
