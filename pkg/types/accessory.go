package types

import "errors"

// AccessoryType is the slot an accessory occupies on the pet.
type AccessoryType string

// Accessory slots.
const (
	AccessoryTop     AccessoryType = "top"
	AccessoryBottom  AccessoryType = "bottom"
	AccessoryHat     AccessoryType = "hat"
	AccessoryGlasses AccessoryType = "glasses"
)

// AccessoryTypes lists every slot.
var AccessoryTypes = []AccessoryType{AccessoryTop, AccessoryBottom, AccessoryHat, AccessoryGlasses}

// Valid reports whether t is a known slot.
func (t AccessoryType) Valid() bool {
	for _, known := range AccessoryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseAccessoryType converts s to an AccessoryType.
func ParseAccessoryType(s string) (AccessoryType, error) {
	t := AccessoryType(s)
	if !t.Valid() {
		return "", ErrInvalidAccessoryType
	}
	return t, nil
}

// Accessory is a shop item. Image references a visual asset by id.
type Accessory struct {
	ID       int64         `json:"id" yaml:"id"`
	Image    int64         `json:"image" yaml:"image"`
	Price    int           `json:"price" yaml:"price"`
	Type     AccessoryType `json:"type" yaml:"type"`
	Owned    bool          `json:"owned" yaml:"owned"`
	Equipped bool          `json:"equipped" yaml:"equipped"`
}

// Accessory validation errors.
var (
	ErrInvalidAccessoryType = errors.New("accessory type must be one of top, bottom, hat, glasses")
	ErrNegativePrice        = errors.New("price must not be negative")
)

// Validate checks the fields the database constrains.
func (a Accessory) Validate() error {
	if !a.Type.Valid() {
		return ErrInvalidAccessoryType
	}
	if a.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
