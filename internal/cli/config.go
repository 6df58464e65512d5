package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/kapa/internal/catalog"
	"github.com/ppiankov/kapa/internal/model"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage kapa configuration",
		Long: `Manage kapa configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (KAPA_*)
3. Config file (~/.kapa/config.yaml)
4. Defaults`,
	}

	configCmd.AddCommand(newConfigShowCmd(a), newConfigInitCmd())
	return configCmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the effective configuration and the catalog locations that will be probed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if used := a.v.ConfigFileUsed(); used != "" {
				if _, statErr := os.Stat(used); statErr == nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", used)
				}
			}

			yamlData, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}
			fmt.Fprint(out, string(yamlData))

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Catalog locations (first readable wins):")
			for i, path := range catalog.DefaultCandidates(cfg.Data) {
				fmt.Fprintf(out, "  %d. %s\n", i+1, path)
			}

			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration file",
		Long:  `Create a default configuration file at ~/.kapa/config.yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("error finding home directory: %w", err)
			}

			configDir := filepath.Join(home, ".kapa")
			configPath := filepath.Join(configDir, "config.yaml")

			// Check if config already exists
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("config file already exists: %s\nUse 'kapa config show' to view it, or delete it first to recreate", configPath)
			}

			if err := os.MkdirAll(configDir, 0755); err != nil {
				return fmt.Errorf("error creating config directory: %w", err)
			}

			yamlData, err := yaml.Marshal(model.DefaultConfig())
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}

			content := "# kapa configuration file\n" +
				"#\n" +
				"# Configuration hierarchy (highest to lowest priority):\n" +
				"#   1. CLI flags\n" +
				"#   2. Environment variables (KAPA_*)\n" +
				"#   3. This config file\n" +
				"#   4. Built-in defaults\n\n" +
				string(yamlData)

			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				return fmt.Errorf("error writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", configPath)
			return nil
		},
	}
}
