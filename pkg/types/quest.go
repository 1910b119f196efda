package types

import "errors"

// Mood categorizes quests and mood-tagged content.
type Mood string

// Quest mood categories.
const (
	MoodNeutral Mood = "neutral"
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
	MoodAnxious Mood = "anxious"
)

// Moods lists every mood category in catalog order.
var Moods = []Mood{MoodNeutral, MoodHappy, MoodSad, MoodAngry, MoodAnxious}

// Valid reports whether m is a known mood category.
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMood converts s to a Mood, returning ErrInvalidMood for unknown values.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", ErrInvalidMood
	}
	return m, nil
}

// DefaultTimerMinutes is the timer a quest gets when none is given.
const DefaultTimerMinutes = 5

// Quest is a timed, mood-tagged micro-task that pays coins once.
type Quest struct {
	ID           int64  `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Reward       int    `json:"reward" yaml:"reward"`
	TimerMinutes int    `json:"timer_minutes" yaml:"timer_minutes"`
	Progress     int    `json:"progress" yaml:"progress"`
	Rewarded     bool   `json:"rewarded" yaml:"rewarded"`
	Mood         Mood   `json:"mood" yaml:"mood"`
}

// Quest validation errors.
var (
	ErrInvalidMood     = errors.New("mood must be one of neutral, happy, sad, angry, anxious")
	ErrInvalidTitle    = errors.New("quest title must not be empty")
	ErrInvalidProgress = errors.New("progress must not be negative")
)

// Validate checks the fields the database constrains.
func (q Quest) Validate() error {
	if q.Title == "" {
		return ErrInvalidTitle
	}
	if !q.Mood.Valid() {
		return ErrInvalidMood
	}
	if q.Progress < 0 {
		return ErrInvalidProgress
	}
	return nil
}
