package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wexinc/mixadd/internal/config"
)

// configCmd groups the configuration commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the mixadd configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the effective configuration as YAML: defaults, overridden by
.mixadd.yaml, overridden by MIXADD_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .mixadd.yaml",
	Long: `Write the default configuration to .mixadd.yaml in the project directory,
or to the path given with --config.

Examples:
  mixadd config init          # Create .mixadd.yaml
  mixadd config init --force  # Overwrite an existing file`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	cmd.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(cmd)
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = filepath.Join(dir, config.DefaultConfigFile)
	}
	if err := config.WriteDefault(path, force); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	return nil
}
