// Command line interface of cachedl
package cli

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iTrooz/cached-downloader/internal/cache"
	"github.com/iTrooz/cached-downloader/internal/config"
	"github.com/iTrooz/cached-downloader/internal/dirs"
	"github.com/iTrooz/cached-downloader/internal/logging"
)

const version = "0.1.0"

// app holds state shared by all commands
type app struct {
	configPath string
	config     *config.Config
}

// NewRootCmd builds the cachedl command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "cachedl",
		Short:         "Download files into a local cache",
		Long:          "cachedl returns local copies of remote files, downloading each URL only once.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "path to the YAML config file")

	rootCmd.AddCommand(newFetchCmd(a))
	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newRootDirCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Run executes the command line and returns the process exit code
func Run(args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

func (a *app) load() error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logging.Init(cfg.Log); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.config = cfg
	return nil
}

// downloader resolves the cache root and builds a downloader for it
func (a *app) downloader() (*cache.Downloader, error) {
	timeout, err := a.config.GetTimeout()
	if err != nil {
		return nil, fmt.Errorf("invalid download timeout: %w", err)
	}

	resolver := dirs.ConfigResolver{
		External: a.config.Cache.ExternalDir,
		Internal: a.config.Cache.InternalDir,
	}
	root := dirs.ResolveRoot(resolver, a.config.Cache.DirName)
	logrus.Debugf("Cache directory: %s", root)

	return cache.New(root,
		cache.WithClient(&http.Client{Timeout: timeout}),
		cache.WithBufferSize(a.config.Download.BufferSize),
		cache.WithUserAgent(a.config.Download.UserAgent),
	), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print cachedl version",
		// no config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cachedl version %s\n", version)
		},
	}
}
