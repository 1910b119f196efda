package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/companion/internal/app"
	"github.com/mesh-intelligence/companion/pkg/types"
)

// snapshot is the document written by export.
type snapshot struct {
	ExportedAt    time.Time         `yaml:"exported_at" json:"exported_at"`
	SchemaVersion int               `yaml:"schema_version" json:"schema_version"`
	User          *types.User       `yaml:"user" json:"user"`
	Quests        []types.Quest     `yaml:"quests" json:"quests"`
	Accessories   []types.Accessory `yaml:"accessories" json:"accessories"`
	Moods         []types.MoodEntry `yaml:"moods" json:"moods"`
}

func newExportCmd(e *env) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the store as YAML",
		Long: `Export the profile, quests, accessories and mood history as a YAML
document (JSON with --json).

EXAMPLES:

  companion export
  companion export -o companion.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				snap, err := buildSnapshot(ctx, a.Store)
				if err != nil {
					return err
				}

				if output == "" {
					if e.flags.jsonMode {
						return printJSON(cmd.OutOrStdout(), snap)
					}
					enc := yaml.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent(2)
					if err := enc.Encode(snap); err != nil {
						return sysErrorf("encode yaml: %w", err)
					}
					return enc.Close()
				}

				data, err := yaml.Marshal(snap)
				if err != nil {
					return sysErrorf("encode yaml: %w", err)
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return sysErrorf("write export: %w", err)
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", output)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

// buildSnapshot reads every table. Stores without the accessory table
// export an empty list.
func buildSnapshot(ctx context.Context, store types.Store) (*snapshot, error) {
	user, err := store.Users().Get(ctx)
	if err != nil {
		return nil, err
	}
	quests, err := store.Quests().Fetch(ctx, types.QuestFilter{})
	if err != nil {
		return nil, err
	}
	accessories, err := store.Accessories().Fetch(ctx, types.AccessoryFilter{})
	if err != nil && !isTableNotFound(err) {
		return nil, fmt.Errorf("export accessories: %w", err)
	}
	moods, err := store.Moods().Fetch(ctx, 0)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		ExportedAt:    time.Now().UTC(),
		SchemaVersion: store.Version(),
		User:          user,
		Quests:        quests,
		Accessories:   accessories,
		Moods:         moods,
	}
	if snap.Accessories == nil {
		snap.Accessories = []types.Accessory{}
	}
	if snap.Moods == nil {
		snap.Moods = []types.MoodEntry{}
	}
	return snap, nil
}
