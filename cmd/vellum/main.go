package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	verrors "github.com/vellum-dev/vellum/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vellum",
		Short: "Build and render HTML documents from tree descriptions",
		Long: `Vellum turns nested document descriptions into HTML.

Documents are built as plain data (YAML, JSON, or Go values), held as
immutable node trees, and rendered with context-correct escaping.

  • render a description file to HTML
  • serve a directory of descriptions with live reload
  • publish a rendered site to a directory or S3 bucket`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// cliError unwraps structured errors into their multi-line CLI form.
func cliError(err error) error {
	var ve *verrors.Error
	if errors.As(err, &ve) {
		return errors.New(ve.Format())
	}
	return err
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
