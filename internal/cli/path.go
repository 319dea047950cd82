package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path URL...",
		Short: "Print the cache file used for each URL, without downloading",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			downloader, err := a.downloader()
			if err != nil {
				return err
			}
			for _, url := range args {
				path, ok := downloader.FilePath(url)
				if !ok {
					logrus.WithField("url", url).Warn("URL cannot be cached, skipping")
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}

func newRootDirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			downloader, err := a.downloader()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), downloader.Dir())
			return nil
		},
	}
}
