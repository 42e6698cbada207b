// Package cmd provides the CLI commands for mixadd.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wexinc/mixadd/internal/config"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
	"github.com/wexinc/mixadd/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mixadd [query...]",
	Short: "Search hex.pm and add packages to a Mix project",
	Long: `mixadd searches the hex.pm registry, shows which results are already
locked in the project, and adds or upgrades the packages you pick in
mix.exs before running mix deps.get and mix format.

Running mixadd with a query is the same as "mixadd install <query>".`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	addGlobalFlags(rootCmd)
	addInstallFlags(rootCmd)
}

func addGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().StringP("dir", "C", "", "Project directory (default: current directory)")
	c.PersistentFlags().String("config", "", "Path to the configuration file (default: <dir>/.mixadd.yaml)")
	c.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
}

// runRoot behaves like "mixadd install" when a query is given.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return runInstall(cmd, args)
}

// Execute runs the root command with a context canceled on SIGINT or
// SIGTERM. Errors are printed to stderr and exit with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd.Version = version.Current().String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes the formatted error, with a pointer to the help text
// when the error came from bad input.
func printError(w io.Writer, err error) {
	fmt.Fprint(w, mixerrors.FormatAny(err))
	if mixerrors.IsUserError(err) {
		fmt.Fprintln(w, "Run 'mixadd --help' for usage.")
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// projectDir resolves the --dir flag to an absolute directory.
func projectDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", mixerrors.UsageError("project directory not found: "+dir, "mixadd -C <dir> install <query>")
	}
	return abs, nil
}

// loadConfig loads the configuration named by --config, or the project's
// .mixadd.yaml when the flag is unset.
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, dir)
}
