/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/fourcc/pkg/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fourcc configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file to the --config path
(default ` + config.GetDefaultConfigPath() + `).

Examples:
  fourcc config init
  fourcc config init --with-api-key --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			withAPIKey, _ := cmd.Flags().GetBool("with-api-key")
			configPath, _ := configPathFlag(cmd)

			if config.ConfigExists(configPath) && !force {
				cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
				return nil
			}

			cfg, err := config.BootstrapConfig(configPath, withAPIKey)
			if err != nil {
				return err
			}

			cmd.Printf("✅ Wrote configuration to %s\n", configPath)
			if cfg.Security.APIKey != "" {
				cmd.Printf("API key: %s\n", cfg.Security.APIKey)
			}
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().Bool("with-api-key", false, "Generate a random API key for the server")

	configCmd.AddCommand(initCmd)
	return configCmd
}
