package main

import (
	"fmt"

	"github.com/sidechain-audio/triggerscan/internal/config"
	"github.com/sidechain-audio/triggerscan/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
	cfg      *config.ScanConfig
)

var rootCmd = &cobra.Command{
	Use:   "triggerscan",
	Short: "triggerscan locates a trigger sound inside a PCM stream",
	Long: `triggerscan runs the sliding-window fingerprint scan against a WAV
file, reporting every occurrence of the reference trigger sound plus a
post-trigger payload fingerprint for each one.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(logLevel, logFile); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "triggerscan.log", "log file path")

	rootCmd.AddCommand(runCmd)
}
