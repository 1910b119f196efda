package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/internal/app"
)

func newMusicCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "music",
		Short: "Turn background music on or off",
	}

	toggle := func(enabled bool) *cobra.Command {
		use, short := "on", "Enable background music"
		if !enabled {
			use, short = "off", "Disable background music"
		}
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
					if err := saveSetting(e.v, e.configDir, cfgKeyMusicEnabled, enabled); err != nil {
						return sysErrorf("%w", err)
					}
					a.Music.SetEnabled(enabled)
					return printMusic(cmd, e, a)
				})
			},
		}
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the music setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				return printMusic(cmd, e, a)
			})
		},
	}

	cmd.AddCommand(toggle(true), toggle(false), status)
	return cmd
}

func printMusic(cmd *cobra.Command, e *env, a *app.App) error {
	w := cmd.OutOrStdout()
	if e.flags.jsonMode {
		return printJSON(w, map[string]any{
			"enabled": a.Music.Enabled(),
			"playing": a.Music.Playing(),
		})
	}
	if a.Music.Enabled() {
		color.New(color.FgGreen).Fprintln(w, "♪ Music on")
	} else {
		fmt.Fprintln(w, faint.Sprint("♪ Music off"))
	}
	return nil
}
