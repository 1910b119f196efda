package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/companion/pkg/types"
)

// accessoryTable implements types.AccessoryTable. The table exists from
// schema version 8.
type accessoryTable struct {
	backend *Backend
}

const accessoryColumns = "id, image, price, type, owned, equipped"

// available reports ErrTableNotFound on stores older than v8. Callers hold
// the lock.
func (t *accessoryTable) available() error {
	if t.backend.version < 8 {
		return fmt.Errorf("accessory table needs schema version 8, store is at %d: %w", t.backend.version, types.ErrTableNotFound)
	}
	return nil
}

func scanAccessory(row rowScanner) (types.Accessory, error) {
	var (
		a               types.Accessory
		typ             string
		owned, equipped int
	)
	if err := row.Scan(&a.ID, &a.Image, &a.Price, &typ, &owned, &equipped); err != nil {
		return types.Accessory{}, err
	}
	a.Type = types.AccessoryType(typ)
	a.Owned = owned == 1
	a.Equipped = equipped == 1
	return a, nil
}

// Add inserts a catalog item.
func (t *accessoryTable) Add(ctx context.Context, a types.Accessory) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	var id int64
	err := t.backend.write(func(db *sql.DB) error {
		if err := t.available(); err != nil {
			return err
		}
		res, err := db.ExecContext(ctx,
			"INSERT INTO accessory (image, price, type, owned, equipped) VALUES (?, ?, ?, ?, ?)",
			a.Image, a.Price, string(a.Type), boolToInt(a.Owned), boolToInt(a.Equipped))
		if err != nil {
			return classify("add accessory", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// Get returns an accessory by id.
func (t *accessoryTable) Get(ctx context.Context, id int64) (*types.Accessory, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	var a types.Accessory
	err := t.backend.read(func(db *sql.DB) error {
		if err := t.available(); err != nil {
			return err
		}
		var err error
		a, err = scanAccessory(db.QueryRowContext(ctx, "SELECT "+accessoryColumns+" FROM accessory WHERE id = ?", id))
		return classify(fmt.Sprintf("get accessory %d", id), err)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Fetch returns accessories matching filter ordered by id.
func (t *accessoryTable) Fetch(ctx context.Context, filter types.AccessoryFilter) ([]types.Accessory, error) {
	var (
		where []string
		args  []any
	)
	if filter.Type != "" {
		if !filter.Type.Valid() {
			return nil, types.ErrInvalidAccessoryType
		}
		where = append(where, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Owned != nil {
		where = append(where, "owned = ?")
		args = append(args, boolToInt(*filter.Owned))
	}
	if filter.Equipped != nil {
		where = append(where, "equipped = ?")
		args = append(args, boolToInt(*filter.Equipped))
	}

	var items []types.Accessory
	err := t.backend.read(func(db *sql.DB) error {
		if err := t.available(); err != nil {
			return err
		}
		query := "SELECT " + accessoryColumns + " FROM accessory"
		if len(where) > 0 {
			query += " WHERE " + strings.Join(where, " AND ")
		}
		query += " ORDER BY id"

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return classify("fetch accessories", err)
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanAccessory(rows)
			if err != nil {
				return classify("scan accessory", err)
			}
			items = append(items, a)
		}
		return rows.Err()
	})
	return items, err
}

// Purchase charges the price and marks the item owned.
func (t *accessoryTable) Purchase(ctx context.Context, id int64) (int, error) {
	if id <= 0 {
		return 0, types.ErrInvalidID
	}
	var balance int
	err := t.backend.inTx(ctx, func(tx *sql.Tx) error {
		if err := t.available(); err != nil {
			return err
		}
		a, err := scanAccessory(tx.QueryRowContext(ctx, "SELECT "+accessoryColumns+" FROM accessory WHERE id = ?", id))
		if err != nil {
			return classify(fmt.Sprintf("purchase accessory %d", id), err)
		}
		if a.Owned {
			return fmt.Errorf("purchase accessory %d: %w", id, types.ErrAlreadyOwned)
		}
		balance, err = addCoins(ctx, tx, -a.Price)
		if err != nil {
			return fmt.Errorf("purchase accessory %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, "UPDATE accessory SET owned = 1 WHERE id = ?", id); err != nil {
			return classify(fmt.Sprintf("purchase accessory %d", id), err)
		}
		return nil
	})
	return balance, err
}

// Equip wears an owned item, taking off whatever occupied the same slot.
func (t *accessoryTable) Equip(ctx context.Context, id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	return t.backend.inTx(ctx, func(tx *sql.Tx) error {
		if err := t.available(); err != nil {
			return err
		}
		a, err := scanAccessory(tx.QueryRowContext(ctx, "SELECT "+accessoryColumns+" FROM accessory WHERE id = ?", id))
		if err != nil {
			return classify(fmt.Sprintf("equip accessory %d", id), err)
		}
		if !a.Owned {
			return fmt.Errorf("equip accessory %d: %w", id, types.ErrNotOwned)
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE accessory SET equipped = 0 WHERE type = ? AND id <> ? AND equipped = 1",
			string(a.Type), id); err != nil {
			return classify("unequip slot", err)
		}
		if _, err := tx.ExecContext(ctx, "UPDATE accessory SET equipped = 1 WHERE id = ?", id); err != nil {
			return classify(fmt.Sprintf("equip accessory %d", id), err)
		}
		return nil
	})
}

// Unequip takes an item off.
func (t *accessoryTable) Unequip(ctx context.Context, id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	return t.backend.write(func(db *sql.DB) error {
		if err := t.available(); err != nil {
			return err
		}
		res, err := db.ExecContext(ctx, "UPDATE accessory SET equipped = 0 WHERE id = ?", id)
		if err != nil {
			return classify("unequip accessory", err)
		}
		return requireRow(res, fmt.Sprintf("unequip accessory %d", id))
	})
}
