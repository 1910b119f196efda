package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/pkg/companion"
	"github.com/mesh-intelligence/companion/pkg/sqlite"
)

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the companion version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if e.flags.jsonMode {
				return printJSON(w, map[string]any{
					"version":        companion.Version,
					"revision":       companion.Revision,
					"module":         companion.ModulePath,
					"schema_version": sqlite.CurrentSchemaVersion,
				})
			}
			fmt.Fprintf(w, "companion v%s (%s)\nmodule: %s\nschema: v%d\n",
				companion.Version, companion.Revision, companion.ModulePath, sqlite.CurrentSchemaVersion)
			return nil
		},
	}
}
