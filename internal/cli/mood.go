package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/internal/app"
	"github.com/mesh-intelligence/companion/pkg/types"
)

func newMoodCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Log and review mood ratings",
	}
	cmd.AddCommand(newMoodLogCmd(e), newMoodListCmd(e))
	return cmd
}

func newMoodLogCmd(e *env) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "log <1-5>",
		Short: "Record how you feel",
		Long: `Record a mood rating from 1 (very low) to 5 (very good).

EXAMPLES:

  companion mood log 4
  companion mood log 2 --date 2026-03-14`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return userErrorf("invalid mood value %q", args[0])
			}
			entry := types.NewMoodEntry(value, time.Now())
			if date != "" {
				if _, err := time.Parse(types.MoodDateLayout, date); err != nil {
					return userErrorf("invalid date %q (use YYYY-MM-DD)", date)
				}
				entry.Date = date
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				id, err := a.Store.Moods().Record(ctx, entry)
				if err != nil {
					return err
				}
				entry.ID = id
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, entry)
				}
				color.New(color.FgGreen).Fprintf(w, "✓ Logged mood %d\n", entry.Value)
				fmt.Fprintf(w, "  %s\n", faint.Sprint(entry.Date))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date of the entry (default today)")
	return cmd
}

func newMoodListCmd(e *env) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recent mood entries, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				entries, err := a.Store.Moods().Fetch(ctx, limit)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					if entries == nil {
						entries = []types.MoodEntry{}
					}
					return printJSON(w, entries)
				}
				if len(entries) == 0 {
					fmt.Fprintln(w, "No mood entries yet.")
					return nil
				}
				for _, m := range entries {
					fmt.Fprintf(w, "%s %d %s\n",
						faint.Sprint(m.Date),
						m.Value,
						strings.Repeat("●", m.Value))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "max number of entries (0 for all)")
	return cmd
}
