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

func newShopCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage accessories",
	}
	cmd.AddCommand(
		newShopAddCmd(e),
		newShopListCmd(e),
		newShopBuyCmd(e),
		newShopEquipCmd(e, true),
		newShopEquipCmd(e, false),
	)
	return cmd
}

func newShopAddCmd(e *env) *cobra.Command {
	var (
		image int64
		price int
		typ   string
		owned bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an accessory to the shop",
		Long: `Add an accessory to the shop catalog.

EXAMPLES:

  companion shop add --type hat --price 60 --image 101
  companion shop add --type glasses --price 0 --image 7 --owned`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := types.ParseAccessoryType(typ)
			if err != nil {
				return userErrorf("%w: %q", err, typ)
			}
			acc := types.Accessory{Image: image, Price: price, Type: t, Owned: owned}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				id, err := a.Store.Accessories().Add(ctx, acc)
				if err != nil {
					return err
				}
				acc.ID = id
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, acc)
				}
				color.New(color.FgGreen).Fprintf(w, "✓ Added %s\n", acc.Type)
				fmt.Fprintf(w, "  %s\n", faint.Sprintf("id %d", id))
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&image, "image", 0, "image asset id")
	cmd.Flags().IntVar(&price, "price", 0, "price in coins")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "slot: top, bottom, hat, glasses")
	cmd.Flags().BoolVar(&owned, "owned", false, "add as already owned")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newShopListCmd(e *env) *cobra.Command {
	var (
		typ       string
		ownedOnly bool
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List accessories",
		Long: `List accessories in the shop.

Each line shows: ID  TYPE  PRICE  STATUS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter types.AccessoryFilter
			if typ != "" {
				t, err := types.ParseAccessoryType(typ)
				if err != nil {
					return userErrorf("%w: %q", err, typ)
				}
				filter.Type = t
			}
			if ownedOnly {
				owned := true
				filter.Owned = &owned
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				items, err := a.Store.Accessories().Fetch(ctx, filter)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					if items == nil {
						items = []types.Accessory{}
					}
					return printJSON(w, items)
				}
				if len(items) == 0 {
					fmt.Fprintln(w, "No accessories found.")
					return nil
				}
				for _, acc := range items {
					status := faint.Sprint("for sale")
					switch {
					case acc.Equipped:
						status = color.GreenString("wearing")
					case acc.Owned:
						status = "owned"
					}
					fmt.Fprintf(w, "%s %s %s %s\n",
						faint.Sprint(padRight(strconv.FormatInt(acc.ID, 10), 4)),
						padRight(string(acc.Type), 8),
						padRight(fmt.Sprintf("%dc", acc.Price), 6),
						status)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "filter by slot")
	cmd.Flags().BoolVar(&ownedOnly, "owned", false, "only owned accessories")
	return cmd
}

func newShopBuyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Buy an accessory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				balance, err := a.Store.Accessories().Purchase(ctx, id)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if e.flags.jsonMode {
					return printJSON(w, map[string]any{"id": id, "coins": balance})
				}
				color.New(color.FgGreen).Fprintf(w, "✓ Bought accessory %d\n", id)
				fmt.Fprintf(w, "  coins: %d\n", balance)
				return nil
			})
		},
	}
}

// newShopEquipCmd builds "equip" or "unequip".
func newShopEquipCmd(e *env, equip bool) *cobra.Command {
	use, short := "equip <id>", "Wear an owned accessory"
	if !equip {
		use, short = "unequip <id>", "Take an accessory off"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.withApp(cmd, func(ctx context.Context, a *app.App) error {
				shop := a.Store.Accessories()
				if equip {
					err = shop.Equip(ctx, id)
				} else {
					err = shop.Unequip(ctx, id)
				}
				if err != nil {
					return err
				}
				verb := "Wearing"
				if !equip {
					verb = "Took off"
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s accessory %d\n", verb, id)
				return nil
			})
		},
	}
}
