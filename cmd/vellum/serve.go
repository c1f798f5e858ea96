package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vellum-dev/vellum/internal/preview"
)

func serveCmd() *cobra.Command {
	var addr string
	var noWatch bool
	var compact bool

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview a directory of descriptions with live reload",
		Long: `Serve renders description files on every request, so edits show up
immediately. Connected browsers reload automatically when files under
the directory change. Prometheus metrics are exposed on /metrics.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			info("serving %s on %s", root, addr)
			srv := preview.New(preview.Config{
				Root:    root,
				Addr:    addr,
				Watch:   !noWatch,
				Compact: compact,
			})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8420", "listen address")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "disable the file watcher and live reload")
	cmd.Flags().BoolVar(&compact, "compact", false, "omit the cosmetic line breaks")
	return cmd
}
