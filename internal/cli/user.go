package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/internal/app"
)

func newUserCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show or rename the profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				u, err := a.Store.Users().Get(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, u)
				}
				fmt.Fprintf(w, "Name:  %s\n", u.Name)
				fmt.Fprintf(w, "Coins: %d\n", u.Coins)
				fmt.Fprintf(w, "Pet:   %s\n", u.PetGender)
				return nil
			})
		},
	}

	rename := &cobra.Command{
		Use:   "rename <name>",
		Short: "Set the profile name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Store.Users().Rename(ctx, args[0]); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Renamed to %q\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(show, rename)
	return cmd
}
