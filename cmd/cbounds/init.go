package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirkon/cbounds/internal/config"
)

var force bool

// initCmd: cbounds init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.FileNames[0]
		}

		if err := initConfigurationFile(path, force); err != nil {
			logger.Error("failed to initialize config file", zap.String("path", path), zap.Error(err))
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
}

func initConfigurationFile(path string, overwrite bool) error {
	data, err := config.Marshal(config.Default())
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("config %s already exists, use --force to overwrite it", path)
		}
		return fmt.Errorf("create config: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}

	return nil
}
