// Package cmd implements the humanname command-line interface: parsing a
// free-form name to structured JSON, and checking two names for
// plausible equality.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dbryar/humanname/internal/config"
	"github.com/dbryar/humanname/internal/logging"
)

var (
	rootCmd = &cobra.Command{
		Use:          "humanname",
		Short:        "humanname",
		SilenceUsage: true,
		Long:         `Parse free-form human names and check two parses for plausible equality.`,
	}

	configPath string
	verbose    bool
	logger     *logrus.Logger
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to an optional humanname.yaml table-override file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		logger = logging.New(verbose)
		if configPath == "" {
			return
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			logger.WithError(err).WithField("path", configPath).Warn("failed to load config, using built-in tables only")
			return
		}
		cfg.Apply()
	})
}
