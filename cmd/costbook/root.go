// Root command for the costbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/fabrica-tools/costbook/internal/paths"
	"github.com/fabrica-tools/costbook/pkg/costbook"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:     "costbook",
	Short:   "Costbook is a local-first bill-of-materials costing tool",
	Version: costbook.Version,
	Long: `Costbook keeps a local book of raw materials with unit costs and
finished products with recipes, and derives unit and daily production
costs from them. State lives in a single durable snapshot per data
directory and can be exported to or imported from JSON for backup.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.costbook-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(materialCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(recipeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
}

// resolveDataDir returns the data directory path following precedence:
// --data-dir flag > config.yaml data_dir > COSTBOOK_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following precedence:
// --config-dir flag > COSTBOOK_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
