package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/companion/pkg/types"
)

func TestAttach_FreshStore(t *testing.T) {
	b, dir := attachTestBackend(t)

	_, err := os.Stat(filepath.Join(dir, DBName))
	require.NoError(t, err, "database file should be created")
	assert.Equal(t, CurrentSchemaVersion, b.Version())

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"one user row", "SELECT COUNT(*) FROM user", 1},
		{"105 quests", "SELECT COUNT(*) FROM quest", 105},
		{"no accessories", "SELECT COUNT(*) FROM accessory", 0},
		{"no mood entries", "SELECT COUNT(*) FROM mood", 0},
		{"21 neutral quests", "SELECT COUNT(*) FROM quest WHERE mood = 'neutral'", 21},
		{"21 happy quests", "SELECT COUNT(*) FROM quest WHERE mood = 'happy'", 21},
		{"21 sad quests", "SELECT COUNT(*) FROM quest WHERE mood = 'sad'", 21},
		{"21 angry quests", "SELECT COUNT(*) FROM quest WHERE mood = 'angry'", 21},
		{"21 anxious quests", "SELECT COUNT(*) FROM quest WHERE mood = 'anxious'", 21},
		{"no quest starts rewarded", "SELECT COUNT(*) FROM quest WHERE rewarded = 1 OR progress <> 0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, count(t, b.db, tt.query))
		})
	}
}

func TestAttach_SeededUser(t *testing.T) {
	b, _ := attachTestBackend(t)

	u, err := b.Users().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.UserID, u.ID)
	assert.Equal(t, "", u.Name)
	assert.Equal(t, 150, u.Coins)
	assert.Equal(t, types.PetMale, u.PetGender)
}

func TestAttach_ReattachIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b := NewBackend()
		require.NoError(t, b.Attach(ctx, testConfig(dir)))
		require.NoError(t, b.Detach())
	}

	b := attachAt(t, dir)
	assert.Equal(t, 1, count(t, b.db, "SELECT COUNT(*) FROM user"))
	assert.Equal(t, 105, count(t, b.db, "SELECT COUNT(*) FROM quest"))
	assert.Equal(t, CurrentSchemaVersion, b.Version())
}

func TestAttach_KeepsUserChanges(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	b := NewBackend()
	require.NoError(t, b.Attach(ctx, testConfig(dir)))
	require.NoError(t, b.Users().Rename(ctx, "Pip"))
	_, err := b.Users().AddCoins(ctx, 25)
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	b = attachAt(t, dir)
	u, err := b.Users().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pip", u.Name)
	assert.Equal(t, 175, u.Coins)
}

func TestAttach_AlreadyAttached(t *testing.T) {
	b, dir := attachTestBackend(t)
	err := b.Attach(context.Background(), testConfig(dir))
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestAttach_InvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(context.Background(), types.Config{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	err = b.Attach(context.Background(), types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestAttach_UnknownTargetVersion(t *testing.T) {
	for _, v := range []int{0, MinSchemaVersion - 1, CurrentSchemaVersion + 1} {
		b := NewBackend(WithTargetVersion(v))
		err := b.Attach(context.Background(), testConfig(t.TempDir()))
		assert.ErrorIs(t, err, types.ErrUnknownVersion, "target %d", v)
	}
}

func TestAttach_StorageUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "data dir is a regular file",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "not-a-dir")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
				return path
			},
		},
		{
			name: "database path is a directory",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				require.NoError(t, os.Mkdir(filepath.Join(dir, DBName), 0o755))
				return dir
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBackend()
			err := b.Attach(context.Background(), testConfig(tt.setup(t)))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrStorageUnavailable)
			assert.Equal(t, 0, b.Version())
		})
	}
}

func TestAttach_MigrationGap(t *testing.T) {
	for _, stored := range []int{3, CurrentSchemaVersion + 1} {
		dir := t.TempDir()
		raw := openRaw(t, dir)
		_, err := raw.Exec(fmt.Sprintf("PRAGMA user_version = %d", stored))
		require.NoError(t, err)
		require.NoError(t, raw.Close())

		b := NewBackend()
		err = b.Attach(context.Background(), testConfig(dir))
		assert.ErrorIs(t, err, types.ErrMigrationGap, "stored version %d", stored)
	}
}

func TestAttach_NewerThanTarget(t *testing.T) {
	dir := t.TempDir()
	createAt(t, dir, 8)

	b := NewBackend(WithTargetVersion(7))
	err := b.Attach(context.Background(), testConfig(dir))
	assert.ErrorIs(t, err, types.ErrMigrationGap)
}

func TestDetach(t *testing.T) {
	b, _ := attachTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "second Detach should not error")
	assert.Equal(t, 0, b.Version())

	_, err := b.Users().Get(ctx)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = b.Quests().Fetch(ctx, types.QuestFilter{})
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = b.Accessories().Fetch(ctx, types.AccessoryFilter{})
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = b.Moods().Record(ctx, types.MoodEntry{Value: 3, Date: "2026-01-01"})
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = b.Schema(ctx)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestSchemaConstraints(t *testing.T) {
	fresh, _ := attachTestBackend(t)
	migratedDir := t.TempDir()
	createAt(t, migratedDir, MinSchemaVersion)
	migrated := attachAt(t, migratedDir)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		args    []any
		wantErr bool
	}{
		{"pet gender other rejected", "INSERT INTO user (name, pet_gender) VALUES ('a', ?)", []any{"other"}, true},
		{"pet gender male accepted", "INSERT INTO user (name, pet_gender) VALUES ('b', ?)", []any{"male"}, false},
		{"pet gender female accepted", "INSERT INTO user (name, pet_gender) VALUES ('c', ?)", []any{"female"}, false},
		{"user name required", "INSERT INTO user (name, pet_gender) VALUES (NULL, 'male')", nil, true},
		{"mood value 0 rejected", "INSERT INTO mood (value, date) VALUES (?, '2026-01-01')", []any{0}, true},
		{"mood value 6 rejected", "INSERT INTO mood (value, date) VALUES (?, '2026-01-01')", []any{6}, true},
		{"mood value 1 accepted", "INSERT INTO mood (value, date) VALUES (?, '2026-01-01')", []any{1}, false},
		{"mood value 5 accepted", "INSERT INTO mood (value, date) VALUES (?, '2026-01-01')", []any{5}, false},
		{"mood date required", "INSERT INTO mood (value) VALUES (3)", nil, true},
		{"accessory type rejected", "INSERT INTO accessory (image, price, type) VALUES (1, 10, 'shoes')", nil, true},
		{"accessory owned must be 0 or 1", "INSERT INTO accessory (image, price, type, owned) VALUES (1, 10, 'hat', 2)", nil, true},
		{"accessory equipped must be 0 or 1", "INSERT INTO accessory (image, price, type, equipped) VALUES (1, 10, 'hat', -1)", nil, true},
		{"accessory accepted", "INSERT INTO accessory (image, price, type) VALUES (1, 10, 'glasses')", nil, false},
		{"quest mood rejected", "INSERT INTO quest (title, mood) VALUES ('x', 'bored')", nil, true},
		{"quest rewarded must be 0 or 1", "INSERT INTO quest (title, mood, rewarded) VALUES ('y', 'sad', 3)", nil, true},
		{"quest duplicate catalog entry rejected", "INSERT INTO quest (title, mood) VALUES ('Sip Water', 'neutral')", nil, true},
		{"same title under another mood accepted", "INSERT INTO quest (title, mood) VALUES ('Sip Water', 'happy')", nil, false},
	}
	stores := []struct {
		name string
		b    *Backend
	}{
		{"created", fresh},
		{"migrated", migrated},
	}
	for _, store := range stores {
		for _, tt := range tests {
			t.Run(store.name+"/"+tt.name, func(t *testing.T) {
				_, err := store.b.db.ExecContext(ctx, tt.query, tt.args...)
				if tt.wantErr {
					require.Error(t, err)
					assert.True(t, isConstraintError(err), "want constraint error, got %v", err)
					return
				}
				assert.NoError(t, err)
			})
		}
	}
}

func TestSchemaDefaults(t *testing.T) {
	b, _ := attachTestBackend(t)
	ctx := context.Background()

	_, err := b.db.ExecContext(ctx, "INSERT INTO quest (title, mood) VALUES ('Nap', 'neutral')")
	require.NoError(t, err)

	var reward, timer, progress, rewarded int
	err = b.db.QueryRowContext(ctx,
		"SELECT reward, timer_minutes, progress, rewarded FROM quest WHERE title = 'Nap'",
	).Scan(&reward, &timer, &progress, &rewarded)
	require.NoError(t, err)
	assert.Equal(t, 0, reward)
	assert.Equal(t, 5, timer)
	assert.Equal(t, 0, progress)
	assert.Equal(t, 0, rewarded)

	var coins int
	_, err = b.db.ExecContext(ctx, "INSERT INTO user (id, name, pet_gender) VALUES (7, 'x', 'female')")
	require.NoError(t, err)
	require.NoError(t, b.db.QueryRowContext(ctx, "SELECT coins FROM user WHERE id = 7").Scan(&coins))
	assert.Equal(t, 0, coins)
}

func TestSchemaDescribe(t *testing.T) {
	b, _ := attachTestBackend(t)

	s, err := b.Schema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, s.Version)

	var names []string
	for _, tbl := range s.Tables {
		names = append(names, tbl.Name)
	}
	assert.ElementsMatch(t, types.StandardTableNames, names)
	assert.Equal(t, []string{"idx_quest_catalog"}, s.Indexes)

	quest, ok := s.Table(types.TableQuest)
	require.True(t, ok)
	timer, ok := quest.Column("timer_minutes")
	require.True(t, ok)
	assert.Equal(t, "INTEGER", timer.Type)
	assert.True(t, timer.NotNull)
	assert.Equal(t, "5", timer.Default)

	id, ok := quest.Column("id")
	require.True(t, ok)
	assert.True(t, id.PrimaryKey)

	assert.Equal(t, []string{
		"mood IN ('neutral','happy','sad','angry','anxious')",
		"rewarded IN (0,1)",
	}, quest.Checks)
	accessory, ok := s.Table(types.TableAccessory)
	require.True(t, ok)
	assert.Len(t, accessory.Checks, 3)
}

func TestCheckClauses(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
		want []string
	}{
		{"none", "CREATE TABLE t (id INTEGER)", nil},
		{"nested parens", createUser, []string{"pet_gender IN ('male','female')"}},
		{"whitespace collapsed", "CREATE TABLE t (v INTEGER CHECK (\n  v   BETWEEN 1 AND 5\n))", []string{"v BETWEEN 1 AND 5"}},
		{"quoted paren", "CREATE TABLE t (s TEXT CHECK (s <> ')'))", []string{"s <> ')'"}},
		{"sorted", createMood + createAccessory, []string{
			"equipped IN (0,1)",
			"owned IN (0,1)",
			"type IN ('top','bottom','hat','glasses')",
			"value BETWEEN 1 AND 5",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkClauses(tt.ddl))
		})
	}
}
