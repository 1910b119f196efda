package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/internal/app"
	"github.com/mesh-intelligence/companion/pkg/types"
)

func newQuestCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quest",
		Aliases: []string{"quests", "q"},
		Short:   "Browse and complete quests",
	}
	cmd.AddCommand(
		newQuestListCmd(e),
		newQuestShowCmd(e),
		newQuestProgressCmd(e),
		newQuestClaimCmd(e),
		newQuestResetCmd(e),
	)
	return cmd
}

func newQuestListCmd(e *env) *cobra.Command {
	var (
		mood     string
		openOnly bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		Long: `List quests from the catalog.

Each line shows: ID  MOOD  REWARD  TIMER  TITLE  (done)

EXAMPLES:

  companion quest list
  companion quest list --mood anxious
  companion quest list --mood sad --open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter types.QuestFilter
			if mood != "" {
				m, err := types.ParseMood(mood)
				if err != nil {
					return userErrorf("%w: %s", err, mood)
				}
				filter.Mood = m
			}
			if openOnly {
				rewarded := false
				filter.Rewarded = &rewarded
			}

			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				quests, err := a.Store.Quests().Fetch(ctx, filter)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					if quests == nil {
						quests = []types.Quest{}
					}
					return printJSON(w, quests)
				}
				if len(quests) == 0 {
					fmt.Fprintln(w, "No quests found.")
					return nil
				}
				for _, q := range quests {
					done := ""
					if q.Rewarded {
						done = color.GreenString(" (done)")
					}
					fmt.Fprintf(w, "%s %s %s %s %s%s\n",
						faint.Sprint(padRight(strconv.FormatInt(q.ID, 10), 4)),
						padRight(string(q.Mood), 8),
						padRight(fmt.Sprintf("%dc", q.Reward), 4),
						faint.Sprint(padRight(fmt.Sprintf("%dm", q.TimerMinutes), 3)),
						truncate(q.Title, 40),
						done)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&mood, "mood", "m", "", "filter by mood (neutral, happy, sad, angry, anxious)")
	cmd.Flags().BoolVar(&openOnly, "open", false, "only quests whose reward is unclaimed")
	return cmd
}

func newQuestShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				q, err := a.Store.Quests().Get(ctx, id)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, q)
				}
				fmt.Fprintf(w, "ID:       %d\n", q.ID)
				fmt.Fprintf(w, "Title:    %s\n", q.Title)
				fmt.Fprintf(w, "Mood:     %s\n", q.Mood)
				fmt.Fprintf(w, "Reward:   %d coins\n", q.Reward)
				fmt.Fprintf(w, "Timer:    %d min\n", q.TimerMinutes)
				fmt.Fprintf(w, "Progress: %d\n", q.Progress)
				fmt.Fprintf(w, "Claimed:  %s\n", yesNo(q.Rewarded))
				if q.Description != "" {
					fmt.Fprintf(w, "\n%s\n", q.Description)
				}
				return nil
			})
		},
	}
}

func newQuestProgressCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <n>",
		Short: "Record quest progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return userErrorf("invalid progress %q", args[1])
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Store.Quests().SetProgress(ctx, id, n); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Quest %d progress %d\n", id, n)
				return nil
			})
		},
	}
}

func newQuestClaimCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "claim <id>",
		Short: "Claim a quest reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				balance, err := a.Store.Quests().Claim(ctx, id)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, map[string]any{"id": id, "coins": balance})
				}
				color.New(color.FgGreen).Fprintf(w, "✓ Reward claimed\n")
				fmt.Fprintf(w, "  coins: %d\n", balance)
				return nil
			})
		},
	}
}

func newQuestResetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Clear progress so a quest can be played again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Store.Quests().Reset(ctx, id); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Quest %d reset\n", id)
				return nil
			})
		},
	}
}
