package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/mixadd/internal/app"
	"github.com/wexinc/mixadd/internal/build"
	"github.com/wexinc/mixadd/internal/config"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
	"github.com/wexinc/mixadd/internal/lock"
	"github.com/wexinc/mixadd/internal/logging"
	"github.com/wexinc/mixadd/internal/manifest"
	"github.com/wexinc/mixadd/internal/project"
	"github.com/wexinc/mixadd/internal/registry"
	"github.com/wexinc/mixadd/internal/tui"
	"github.com/wexinc/mixadd/internal/version"
)

// installCmd represents the install command.
var installCmd = &cobra.Command{
	Use:     "install <query...>",
	Aliases: []string{"add"},
	Short:   "Search for packages and add the selected ones",
	Long: `Search hex.pm for packages matching the query and add or upgrade the
packages you select in mix.exs.

Results already locked at their latest version are listed but cannot be
selected. Results locked at an older version are offered as upgrades and
pinned to the exact latest version. New packages are added as
{:name, "~> version"}. After the manifest changes, mix deps.get and
mix format run in the project directory.

Examples:
  mixadd install pow                 # Pick from an interactive list
  mixadd install phoenix live view   # Multi-word query
  mixadd install pow --select pow    # Skip the prompt
  mixadd -C apps/web install ecto    # Another project directory
  mixadd install jason --no-build    # Only edit mix.exs`,
	Args: cobra.ArbitraryArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	addInstallFlags(installCmd)
}

func addInstallFlags(c *cobra.Command) {
	c.Flags().Bool("no-build", false, "Do not run the fetch and format commands after editing")
	c.Flags().StringSlice("select", nil, "Packages to add without prompting (comma-separated)")
}

// runInstall is the main entry point for the install command.
func runInstall(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return mixerrors.UsageError("missing search query", "mixadd install <query...>")
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	dir, err := projectDir(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}

	if err := logging.InitGlobal(logging.RunConfig(verbose, cmd.ErrOrStderr())); err != nil {
		// Non-fatal: continue without file logging.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
	}
	logging.Info("mixadd starting", "version", version.Current().Version, "dir", dir, "verbose", verbose)
	logging.Debug("configuration loaded",
		"registry", cfg.Registry.URL,
		"manifest", cfg.ManifestPath(dir),
		"list", cfg.Commands.List,
		"fetch", cfg.Commands.Fetch,
		"format", cfg.Commands.Format,
	)

	installer := newInstaller(cmd, dir, cfg, logging.With("command", cmd.Name()))
	ctx := logging.WithProjectDir(cmd.Context(), dir)
	report, err := installer.Run(ctx, query)
	if err != nil {
		logging.Error("install failed", "error", err.Error(), "fatal", mixerrors.IsFatal(err))
		return err
	}
	if n := len(report.Warnings); n > 0 {
		logging.Warn("install finished with warnings", "warnings", n)
	}
	return nil
}

// newInstaller wires the install pipeline for a project directory.
func newInstaller(cmd *cobra.Command, dir string, cfg *config.Config, logger *logging.Logger) *app.Installer {
	searcher := registry.NewClient(cfg.Registry, version.Current().UserAgent(), logger)
	locks := lock.NewReader(dir, cfg.Commands.List, project.NewDetector(cfg.Manifest.File), logger)
	writer := manifest.NewWriter(cfg.ManifestPath(dir), logger)

	var selector app.Selector
	picked, _ := cmd.Flags().GetStringSlice("select")
	if names := tui.ParseNames(picked); len(names) > 0 {
		selector = &tui.StaticSelector{Names: names, Out: cmd.ErrOrStderr()}
	} else {
		selector = tui.NewPrompt(os.Stdin, cmd.OutOrStdout())
	}

	var builder app.BuildDriver
	if noBuild, _ := cmd.Flags().GetBool("no-build"); !noBuild {
		builder = build.NewDriver(dir, cfg.Commands, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
	}

	return app.NewInstaller(searcher, locks, selector, writer, builder).
		WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()).
		WithLogger(logger)
}
