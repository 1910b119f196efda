package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/companion/pkg/types"
)

// userTable implements types.UserTable over the single profile row.
type userTable struct {
	backend *Backend
}

const selectUser = `SELECT id, name, coins, pet_gender FROM user WHERE id = ?`

func scanUser(row *sql.Row) (*types.User, error) {
	var u types.User
	var gender string
	if err := row.Scan(&u.ID, &u.Name, &u.Coins, &gender); err != nil {
		return nil, err
	}
	u.PetGender = types.PetGender(gender)
	return &u, nil
}

// Get returns the profile row.
func (t *userTable) Get(ctx context.Context) (*types.User, error) {
	var u *types.User
	err := t.backend.read(func(db *sql.DB) error {
		var err error
		u, err = scanUser(db.QueryRowContext(ctx, selectUser, types.UserID))
		return classify("get user", err)
	})
	return u, err
}

// Rename sets the profile name.
func (t *userTable) Rename(ctx context.Context, name string) error {
	return t.backend.write(func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, "UPDATE user SET name = ? WHERE id = ?", name, types.UserID)
		if err != nil {
			return classify("rename user", err)
		}
		return requireRow(res, "rename user")
	})
}

// AddCoins adjusts the balance and returns the new value.
func (t *userTable) AddCoins(ctx context.Context, delta int) (int, error) {
	var balance int
	err := t.backend.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		balance, err = addCoins(ctx, tx, delta)
		return err
	})
	return balance, err
}

// addCoins applies delta to the user balance inside tx. It is shared by the
// quest and shop operations that pay or charge the user.
func addCoins(ctx context.Context, tx *sql.Tx, delta int) (int, error) {
	var coins int
	err := tx.QueryRowContext(ctx, "SELECT coins FROM user WHERE id = ?", types.UserID).Scan(&coins)
	if err != nil {
		return 0, classify("read balance", err)
	}
	next := coins + delta
	if next < 0 {
		return coins, fmt.Errorf("balance %d, need %d: %w", coins, -delta, types.ErrInsufficientCoins)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE user SET coins = ? WHERE id = ?", next, types.UserID); err != nil {
		return coins, classify("update balance", err)
	}
	return next, nil
}

// requireRow turns an UPDATE that matched nothing into ErrNotFound.
func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, types.ErrNotFound)
	}
	return nil
}
