package types

import (
	"context"
	"errors"
)

// Table names as they appear in the database.
const (
	TableUser      = "user"
	TableAccessory = "accessory"
	TableQuest     = "quest"
	TableMood      = "mood"
)

// StandardTableNames lists all table names for enumeration.
var StandardTableNames = []string{
	TableUser,
	TableAccessory,
	TableQuest,
	TableMood,
}

// UserTable gives access to the single user profile row.
type UserTable interface {
	// Get returns the profile. Returns ErrNotFound if the row is missing.
	Get(ctx context.Context) (*User, error)

	// Rename sets the user (and pet) name. An empty name is allowed.
	Rename(ctx context.Context, name string) error

	// AddCoins adds delta to the balance and returns the new balance.
	// Returns ErrInsufficientCoins if the result would be negative.
	AddCoins(ctx context.Context, delta int) (int, error)
}

// QuestFilter narrows QuestTable.Fetch. Zero values match everything.
type QuestFilter struct {
	Mood     Mood
	Rewarded *bool
}

// QuestTable gives access to the quest catalog and its progress.
type QuestTable interface {
	Get(ctx context.Context, id int64) (*Quest, error)

	// Fetch returns quests matching the filter ordered by id.
	Fetch(ctx context.Context, filter QuestFilter) ([]Quest, error)

	// SetProgress records the progress counter of a quest.
	SetProgress(ctx context.Context, id int64, progress int) error

	// Claim marks the quest rewarded and credits its reward to the user in
	// one transaction. Returns the new coin balance, or ErrAlreadyRewarded
	// if the reward was claimed before.
	Claim(ctx context.Context, id int64) (int, error)

	// Reset clears progress and the rewarded flag so the quest can be
	// played again.
	Reset(ctx context.Context, id int64) error
}

// AccessoryFilter narrows AccessoryTable.Fetch. Zero values match everything.
type AccessoryFilter struct {
	Type     AccessoryType
	Owned    *bool
	Equipped *bool
}

// AccessoryTable gives access to the shop catalog.
type AccessoryTable interface {
	// Add inserts a catalog item and returns its id. Owned and Equipped
	// are stored as given.
	Add(ctx context.Context, a Accessory) (int64, error)

	Get(ctx context.Context, id int64) (*Accessory, error)

	// Fetch returns accessories matching the filter ordered by id.
	Fetch(ctx context.Context, filter AccessoryFilter) ([]Accessory, error)

	// Purchase debits the price from the user and marks the item owned.
	// Returns the new balance.
	Purchase(ctx context.Context, id int64) (int, error)

	// Equip marks an owned item equipped and unequips every other item
	// of the same type in the same transaction.
	Equip(ctx context.Context, id int64) error

	// Unequip clears the equipped flag. Idempotent.
	Unequip(ctx context.Context, id int64) error
}

// MoodTable gives access to the append-only mood history.
type MoodTable interface {
	// Record appends an entry and returns its id.
	Record(ctx context.Context, entry MoodEntry) (int64, error)

	// Fetch returns up to limit entries, newest first. A limit of zero or
	// less returns every entry.
	Fetch(ctx context.Context, limit int) ([]MoodEntry, error)
}

// Table operation errors.
var (
	ErrNotFound            = errors.New("entity not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrInvalidID           = errors.New("invalid entity ID")
	ErrConstraintViolation = errors.New("constraint violation")
)

// Domain rule errors.
var (
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrAlreadyRewarded   = errors.New("quest reward already claimed")
	ErrAlreadyOwned      = errors.New("accessory already owned")
	ErrNotOwned          = errors.New("accessory is not owned")
)
