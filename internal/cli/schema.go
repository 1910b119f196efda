package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/internal/app"
)

func newSchemaCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Describe the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				s, err := a.Store.Schema(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, s)
				}
				fmt.Fprintf(w, "schema v%d\n", s.Version)
				for _, t := range s.Tables {
					fmt.Fprintf(w, "\n%s\n", t.Name)
					for _, c := range t.Columns {
						attrs := ""
						if c.PrimaryKey {
							attrs += " pk"
						}
						if c.NotNull {
							attrs += " not null"
						}
						if c.Default != "" {
							attrs += " default " + c.Default
						}
						fmt.Fprintf(w, "  %s %s%s\n", padRight(c.Name, 14), padRight(c.Type, 8), faint.Sprint(attrs))
					}
					for _, check := range t.Checks {
						fmt.Fprintf(w, "  %s\n", faint.Sprint("check "+check))
					}
				}
				if len(s.Indexes) > 0 {
					fmt.Fprintln(w, "\nindexes")
					for _, idx := range s.Indexes {
						fmt.Fprintf(w, "  %s\n", idx)
					}
				}
				return nil
			})
		},
	}
}
