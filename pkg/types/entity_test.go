package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "seeded profile is valid",
			user: User{ID: UserID, Coins: DefaultCoins, PetGender: DefaultPetGender},
		},
		{
			name: "female pet is valid",
			user: User{ID: UserID, Name: "Mochi", PetGender: PetFemale},
		},
		{
			name:    "other gender rejected",
			user:    User{ID: UserID, PetGender: "other"},
			wantErr: ErrInvalidPetGender,
		},
		{
			name:    "empty gender rejected",
			user:    User{ID: UserID},
			wantErr: ErrInvalidPetGender,
		},
		{
			name:    "negative coins rejected",
			user:    User{ID: UserID, Coins: -1, PetGender: PetMale},
			wantErr: ErrNegativeCoins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseMood(t *testing.T) {
	for _, m := range Moods {
		got, err := ParseMood(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMood("bored")
	assert.ErrorIs(t, err, ErrInvalidMood)

	_, err = ParseMood("")
	assert.ErrorIs(t, err, ErrInvalidMood)
}

func TestQuestValidate(t *testing.T) {
	tests := []struct {
		name    string
		quest   Quest
		wantErr error
	}{
		{
			name:  "catalog style quest is valid",
			quest: Quest{Title: "Sip Water", Reward: 30, TimerMinutes: 1, Mood: MoodNeutral},
		},
		{
			name:  "description is optional",
			quest: Quest{Title: "Stand Tall", Mood: MoodHappy},
		},
		{
			name:    "empty title rejected",
			quest:   Quest{Mood: MoodSad},
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "unknown mood rejected",
			quest:   Quest{Title: "Nap", Mood: "sleepy"},
			wantErr: ErrInvalidMood,
		},
		{
			name:    "negative progress rejected",
			quest:   Quest{Title: "Nap", Mood: MoodAnxious, Progress: -2},
			wantErr: ErrInvalidProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quest.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccessoryValidate(t *testing.T) {
	for _, typ := range AccessoryTypes {
		assert.NoError(t, Accessory{Image: 1, Price: 10, Type: typ}.Validate(), typ)
	}

	assert.ErrorIs(t, Accessory{Price: 10, Type: "shoes"}.Validate(), ErrInvalidAccessoryType)
	assert.ErrorIs(t, Accessory{Price: -5, Type: AccessoryHat}.Validate(), ErrNegativePrice)

	got, err := ParseAccessoryType("glasses")
	require.NoError(t, err)
	assert.Equal(t, AccessoryGlasses, got)

	_, err = ParseAccessoryType("scarf")
	assert.ErrorIs(t, err, ErrInvalidAccessoryType)
}

func TestMoodEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   MoodEntry
		wantErr error
	}{
		{name: "zero rejected", entry: MoodEntry{Value: 0, Date: "2026-01-01"}, wantErr: ErrInvalidMoodValue},
		{name: "one accepted", entry: MoodEntry{Value: 1, Date: "2026-01-01"}},
		{name: "five accepted", entry: MoodEntry{Value: 5, Date: "2026-01-01"}},
		{name: "six rejected", entry: MoodEntry{Value: 6, Date: "2026-01-01"}, wantErr: ErrInvalidMoodValue},
		{name: "missing date rejected", entry: MoodEntry{Value: 3}, wantErr: ErrInvalidMoodDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewMoodEntry(t *testing.T) {
	at := time.Date(2026, time.March, 4, 22, 15, 0, 0, time.UTC)
	e := NewMoodEntry(4, at)
	assert.Equal(t, 4, e.Value)
	assert.Equal(t, "2026-03-04", e.Date)
	assert.NoError(t, e.Validate())
}

func TestSchemaLookup(t *testing.T) {
	s := Schema{
		Version: 9,
		Tables: []TableSchema{
			{Name: TableQuest, Columns: []Column{{Name: "id", Type: "INTEGER", PrimaryKey: true}, {Name: "timer_minutes", Type: "INTEGER", NotNull: true, Default: "5"}}},
		},
	}

	q, ok := s.Table(TableQuest)
	require.True(t, ok)
	col, ok := q.Column("timer_minutes")
	require.True(t, ok)
	assert.Equal(t, "5", col.Default)

	_, ok = q.Column("missing")
	assert.False(t, ok)
	_, ok = s.Table(TableAccessory)
	assert.False(t, ok)
}
