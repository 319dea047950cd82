package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iTrooz/cached-downloader/internal/job"
)

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch URL...",
		Short: "Download URLs into the cache and print their local paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			downloader, err := a.downloader()
			if err != nil {
				return err
			}
			if err := downloader.Init(); err != nil {
				return fmt.Errorf("failed to create cache directory: %w", err)
			}

			ctx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stopSignals()
			token, stop := job.FromContext(ctx)
			defer stop()

			failed := 0
			for _, url := range args {
				path, err := downloader.Download(token, url)
				if err != nil {
					failed++
					logrus.WithField("url", url).Errorf("Download failed: %v", err)
					if token.IsCancelled() {
						return fmt.Errorf("interrupted")
					}
					continue
				}
				if path == "" {
					logrus.WithField("url", url).Warn("URL cannot be cached, skipping")
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d downloads failed", failed, len(args))
			}
			return nil
		},
	}
}
