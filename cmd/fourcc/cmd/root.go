/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/fourcc/pkg/config"
	"github.com/ssargent/fourcc/pkg/di"
)

type configKey struct{}

// skipConfigAnnotation marks commands that must run without loading the config file
const skipConfigAnnotation = "fourcc/skip-config"

var container *di.Container

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

// NewRootCmd builds the fourcc command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fourcc",
		Short: "Inspect and convert four-character codes",
		Long: `fourcc converts four-character codes (the 4-byte tags of boxes, atoms and
chunks in binary container formats) between text, integers and raw bytes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text, json or yaml (default from config)")

	rootCmd.AddCommand(
		newShowCmd(),
		newFromIntCmd(),
		newFromHexCmd(),
		newServeCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// resolveConfig loads the config file if present and applies flag overrides
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if _, skip := cmd.Annotations[skipConfigAnnotation]; skip {
		return cfg, nil
	}

	configPath, explicit := configPathFlag(cmd)
	switch {
	case config.ConfigExists(configPath):
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case explicit:
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if cmd.Flags().Changed("output") {
		cfg.Output, _ = cmd.Flags().GetString("output")
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// configPathFlag returns the --config value or the default path, and whether
// the flag was given
func configPathFlag(cmd *cobra.Command) (string, bool) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		return config.GetDefaultConfigPath(), false
	}
	return configPath, true
}

// configFrom returns the config resolved by the root command
func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}
