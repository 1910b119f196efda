package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/internal/app"
)

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or upgrade the local store",
		Long: `Create the configuration file and the database if they do not exist,
or upgrade an existing database to the current schema version.

Running init again on an up-to-date store changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				dataDir, err := e.dataDir()
				if err != nil {
					return sysErrorf("resolve data dir: %w", err)
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, map[string]any{
						"config_dir":     e.configDir,
						"data_dir":       dataDir,
						"schema_version": a.Store.Version(),
					})
				}
				color.New(color.FgGreen).Fprintln(w, "✓ Store ready")
				fmt.Fprintln(w, "  config:", e.configDir)
				fmt.Fprintln(w, "  data:  ", dataDir)
				fmt.Fprintln(w, "  schema:", faint.Sprintf("v%d", a.Store.Version()))
				return nil
			})
		},
	}
}
