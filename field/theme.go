package field

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrUnknownTheme is returned by ThemeByName.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the background gradient plus the colours particles and overlays sample from.
type Theme struct {
	Name string

	// Top and Bottom are the background gradient end colours
	Top    color.NRGBA
	Bottom color.NRGBA

	// Palette is what particles sample from on every respawn
	Palette []color.NRGBA

	// Accents colour the motes and the pointer follower
	Accents []color.NRGBA
}

var (
	DefaultTheme = Theme{
		Name:   "default",
		Top:    color.NRGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff},
		Bottom: color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff},
		Palette: []color.NRGBA{
			{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}, // indigo
			{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff}, // cyan
			{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}, // emerald
			{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}, // amber
		},
		Accents: []color.NRGBA{
			{R: 0x63, G: 0x66, B: 0xf1, A: 0xff},
			{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff},
		},
	}

	AfricanTheme = Theme{
		Name:   "african",
		Top:    color.NRGBA{R: 0x2b, G: 0x1a, B: 0x0e, A: 0xff},
		Bottom: color.NRGBA{R: 0x5c, G: 0x38, B: 0x1c, A: 0xff},
		Palette: []color.NRGBA{
			{R: 0xd4, G: 0xa0, B: 0x17, A: 0xff}, // gold
			{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff}, // orange
			{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}, // red
			{R: 0x27, G: 0xae, B: 0x60, A: 0xff}, // green
		},
		Accents: []color.NRGBA{
			{R: 0xd4, G: 0xa0, B: 0x17, A: 0xff},
			{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff},
			{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
			{R: 0x27, G: 0xae, B: 0x60, A: 0xff},
			{R: 0x29, G: 0x80, B: 0xb9, A: 0xff}, // blue
			{R: 0x8e, G: 0x44, B: 0xad, A: 0xff}, // purple
		},
	}
)

// Themes lists the built-in themes in toggle order.
var Themes = []Theme{DefaultTheme, AfricanTheme}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// next returns the theme after t in toggle order.
func (t Theme) next() Theme {
	for i, candidate := range Themes {
		if candidate.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return DefaultTheme
}
