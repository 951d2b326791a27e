package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/davnotes/pkg/mirror"
)

var (
	importWatch    bool
	importIgnore   []string
	importDebounce time.Duration
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Upload a local folder of Markdown notes",
	Long: `Import uploads <dir>/*.md as uncategorized notes and <dir>/<category>/*.md
into the matching category, replacing remote copies. Deeper folders are skipped.

With --watch it keeps running and mirrors every later change, including deletions.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := openService(ctx)

		opts := []mirror.Option{mirror.WithLogger(slog.Default())}
		if cmd.Flags().Changed("ignore") {
			opts = append(opts, mirror.WithIgnore(importIgnore...))
		}
		m, err := mirror.New(svc, args[0], opts...)
		if err != nil {
			fatal("Failed to open folder", err)
		}

		report, err := m.Import(ctx)
		for _, rel := range report.Uploaded {
			fmt.Fprintln(cmd.OutOrStdout(), "uploaded", rel)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Some notes failed to upload: %v\n", err)
			if !importWatch {
				os.Exit(1)
			}
		}

		if !importWatch {
			return
		}

		events, err := m.Watch(ctx, importDebounce)
		if err != nil {
			fatal("Failed to watch folder", err)
		}
		for e := range events {
			if e.Err != nil {
				fmt.Fprintln(os.Stderr, e.String())
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "Keep mirroring changes until interrupted")
	importCmd.Flags().StringSliceVar(&importIgnore, "ignore", mirror.DefaultIgnore, "Glob patterns to skip (relative to <dir>)")
	importCmd.Flags().DurationVar(&importDebounce, "debounce", mirror.DefaultDebounce, "Quiet period before a changed file is uploaded")
}
