package types

import "errors"

// UserID is the fixed primary key of the single profile row.
const UserID int64 = 1

// Defaults of the seeded profile row.
const (
	DefaultCoins     = 150
	DefaultPetGender = PetMale
)

// PetGender is the gender chosen for the companion pet.
type PetGender string

// Pet genders accepted by the user table.
const (
	PetMale   PetGender = "male"
	PetFemale PetGender = "female"
)

// Valid reports whether g is an accepted pet gender.
func (g PetGender) Valid() bool {
	return g == PetMale || g == PetFemale
}

// User is the player profile. Exactly one row exists, with ID UserID.
type User struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Coins     int       `json:"coins" yaml:"coins"`
	PetGender PetGender `json:"pet_gender" yaml:"pet_gender"`
}

// User validation errors.
var (
	ErrInvalidPetGender = errors.New("pet gender must be male or female")
	ErrNegativeCoins    = errors.New("coins must not be negative")
)

// Validate checks the fields the database constrains.
func (u User) Validate() error {
	if !u.PetGender.Valid() {
		return ErrInvalidPetGender
	}
	if u.Coins < 0 {
		return ErrNegativeCoins
	}
	return nil
}
