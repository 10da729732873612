package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirkon/cbounds/internal/config"
)

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
	conf   *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "cbounds",
	Short:         "cbounds - sign analysis of integer variables and bounds checks",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("setup logger: %w", err)
		}

		if cmd == initCmd {
			return nil
		}

		conf, err = loadConfig()
		if err != nil {
			logger.Error("failed to load config", zap.String("path", cfgFile), zap.Error(err))
			return err
		}
		if cmd.Flags().Changed("timeout") {
			conf.Timeout = timeout
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, looked up from the current directory by default")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "package loading timeout, 0 for no limit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(cfgCmd)
	rootCmd.AddCommand(initCmd)
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		found, ok := config.Find(".")
		if !ok {
			logger.Debug("no config file found, using defaults")
			return config.Default(), nil
		}
		path = found
	}

	res, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("config loaded", zap.String("path", path))
	return res, nil
}
