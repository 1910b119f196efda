// Package navstyle styles the icons of the bottom navigation bar: the icon
// of the current screen is tinted, enlarged and fully opaque, every other
// icon is grey, normal size and dimmed.
package navstyle

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is the visual state applied to one icon.
type Style struct {
	Tint  Color
	Scale float64
	Alpha float64
}

const (
	ActiveScale   = 1.31
	ActiveAlpha   = 1.0
	InactiveScale = 1.0
	InactiveAlpha = 0.6
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// ParseColor reads "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette holds the two navigation tints.
type Palette struct {
	Active   Color
	Inactive Color
}

// DefaultPalette is a warm orange highlight over neutral grey.
var DefaultPalette = Palette{
	Active:   Color{R: 0xff, G: 0x8a, B: 0x3d},
	Inactive: Color{R: 0x9e, G: 0x9e, B: 0x9e},
}

// Active returns the style of the current screen's icon.
func Active(p Palette) Style {
	return Style{Tint: p.Active, Scale: ActiveScale, Alpha: ActiveAlpha}
}

// Inactive returns the style of every other icon.
func Inactive(p Palette) Style {
	return Style{Tint: p.Inactive, Scale: InactiveScale, Alpha: InactiveAlpha}
}

// Icon is anything that can display a navigation style.
type Icon interface {
	SetStyle(Style)
}

// Apply styles icon as active or inactive with the default palette. A nil
// icon is ignored.
func Apply(icon Icon, active bool) {
	ApplyPalette(icon, DefaultPalette, active)
}

// ApplyPalette is Apply with an explicit palette.
func ApplyPalette(icon Icon, p Palette, active bool) {
	if icon == nil {
		return
	}
	if active {
		icon.SetStyle(Active(p))
		return
	}
	icon.SetStyle(Inactive(p))
}
