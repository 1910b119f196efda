package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/companion/internal/app"
	"github.com/mesh-intelligence/companion/internal/navstyle"
	"github.com/mesh-intelligence/companion/pkg/types"
)

// Navigation tabs in bar order.
var navTabs = []string{"home", "quests", "shop", "mood"}

// navIcon is a terminal navigation label.
type navIcon struct {
	label string
	style navstyle.Style
}

func (i *navIcon) SetStyle(s navstyle.Style) { i.style = s }

// render draws the label: tinted, upper case when enlarged, faint when
// dimmed.
func (i *navIcon) render() string {
	c := color.RGB(int(i.style.Tint.R), int(i.style.Tint.G), int(i.style.Tint.B))
	label := i.label
	if i.style.Scale > 1 {
		label = strings.ToUpper(label)
		c.Add(color.Bold)
	}
	if i.style.Alpha < 1 {
		c.Add(color.Faint)
	}
	return c.Sprint(label)
}

// renderNavBar draws the bar with active highlighted.
func renderNavBar(w io.Writer, active string) {
	labels := make([]string, 0, len(navTabs))
	for _, tab := range navTabs {
		icon := &navIcon{label: tab}
		navstyle.Apply(icon, tab == active)
		labels = append(labels, icon.render())
	}
	fmt.Fprintln(w, strings.Join(labels, "  "))
}

type statusView struct {
	User       *types.User       `json:"user"`
	OpenQuests int               `json:"open_quests"`
	Equipped   []types.Accessory `json:"equipped"`
	LastMood   *types.MoodEntry  `json:"last_mood,omitempty"`
	Schema     int               `json:"schema_version"`
	Music      bool              `json:"music_enabled"`
}

func newStatusCmd(e *env) *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the companion at a glance",
		Long: `Show the navigation bar, profile, open quests, equipped accessories
and the latest mood entry.

EXAMPLES:

  companion status
  companion status --tab shop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validTab(tab) {
				return userErrorf("unknown tab %q (valid: %s)", tab, strings.Join(navTabs, ", "))
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				view, err := loadStatus(ctx, a)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, view)
				}

				renderNavBar(w, tab)
				fmt.Fprintln(w)
				name := view.User.Name
				if name == "" {
					name = faint.Sprint("(unnamed)")
				}
				fmt.Fprintf(w, "%s %s\n", padRight("Name:", 12), name)
				fmt.Fprintf(w, "%s %d\n", padRight("Coins:", 12), view.User.Coins)
				fmt.Fprintf(w, "%s %s\n", padRight("Pet:", 12), view.User.PetGender)
				fmt.Fprintf(w, "%s %d\n", padRight("Open quests:", 12), view.OpenQuests)
				if len(view.Equipped) == 0 {
					fmt.Fprintf(w, "%s %s\n", padRight("Wearing:", 12), faint.Sprint("nothing"))
				} else {
					var worn []string
					for _, acc := range view.Equipped {
						worn = append(worn, fmt.Sprintf("%s #%d", acc.Type, acc.ID))
					}
					fmt.Fprintf(w, "%s %s\n", padRight("Wearing:", 12), strings.Join(worn, ", "))
				}
				if view.LastMood != nil {
					fmt.Fprintf(w, "%s %d %s\n", padRight("Last mood:", 12), view.LastMood.Value, faint.Sprint(view.LastMood.Date))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tab, "tab", "home", "highlighted navigation tab")
	return cmd
}

func validTab(tab string) bool {
	for _, t := range navTabs {
		if t == tab {
			return true
		}
	}
	return false
}

func loadStatus(ctx context.Context, a *app.App) (*statusView, error) {
	user, err := a.Store.Users().Get(ctx)
	if err != nil {
		return nil, err
	}
	open := false
	quests, err := a.Store.Quests().Fetch(ctx, types.QuestFilter{Rewarded: &open})
	if err != nil {
		return nil, err
	}
	view := &statusView{
		User:       user,
		OpenQuests: len(quests),
		Equipped:   []types.Accessory{},
		Schema:     a.Store.Version(),
		Music:      a.Music.Enabled(),
	}

	equipped := true
	items, err := a.Store.Accessories().Fetch(ctx, types.AccessoryFilter{Equipped: &equipped})
	switch {
	case err == nil:
		view.Equipped = append(view.Equipped, items...)
	case !isTableNotFound(err):
		return nil, err
	}

	moods, err := a.Store.Moods().Fetch(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(moods) > 0 {
		view.LastMood = &moods[0]
	}
	return view, nil
}
