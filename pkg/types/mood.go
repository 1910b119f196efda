package types

import (
	"errors"
	"time"
)

// Bounds of a mood rating.
const (
	MinMoodValue = 1
	MaxMoodValue = 5
)

// MoodDateLayout is the layout used for MoodEntry.Date when the caller does
// not provide one.
const MoodDateLayout = "2006-01-02"

// MoodEntry is one self-reported mood rating.
type MoodEntry struct {
	ID    int64  `json:"id" yaml:"id"`
	Value int    `json:"value" yaml:"value"`
	Date  string `json:"date" yaml:"date"`
}

// Mood entry validation errors.
var (
	ErrInvalidMoodValue = errors.New("mood value must be between 1 and 5")
	ErrInvalidMoodDate  = errors.New("mood date must not be empty")
)

// NewMoodEntry returns an entry for value dated at t.
func NewMoodEntry(value int, t time.Time) MoodEntry {
	return MoodEntry{Value: value, Date: t.Format(MoodDateLayout)}
}

// Validate checks the fields the database constrains.
func (m MoodEntry) Validate() error {
	if m.Value < MinMoodValue || m.Value > MaxMoodValue {
		return ErrInvalidMoodValue
	}
	if m.Date == "" {
		return ErrInvalidMoodDate
	}
	return nil
}
