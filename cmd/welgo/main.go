package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vango-dev/welgo/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦ ╦┌─┐┬  ┌─┐┌─┐
  ║║║├┤ │  │ ┬│ │
  ╚╩╝└─┘┴─┘└─┘└─┘
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err, colorize(os.Stderr))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "welgo",
		Short: "Render element trees to HTML",
		Long: `welgo renders declarative element trees to HTML on the server.

Documents are YAML or JSON element trees. welgo can:

  • Render a single document to stdout, a file or S3
  • Serve every configured route over HTTP
  • Build every route into a static site`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		buildCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the welgo ASCII art banner.
func printBanner(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStdout(), banner)
}

// colorize reports whether w is a terminal that should get ANSI colors.
// NO_COLOR disables them.
func colorize(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// status writes one status line, with the marker in color on terminals.
func status(cmd *cobra.Command, marker, color, msg string) {
	w := cmd.ErrOrStderr()
	if colorize(w) {
		marker = color + marker + "\033[0m"
	}
	fmt.Fprintf(w, "%s %s\n", marker, msg)
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	status(cmd, "✓", "\033[32m", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(cmd *cobra.Command, format string, args ...any) {
	status(cmd, "⚠", "\033[33m", fmt.Sprintf(format, args...))
}
