package ui

import "image/color"

// Theme represents a viewer color scheme.
type Theme int

const (
	// ThemeLight is a light background theme
	ThemeLight Theme = iota
	// ThemeDark is a dark background theme
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}

// ThemeByName maps a config string to a theme, defaulting to light.
func ThemeByName(name string) Theme {
	if name == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

// SchematicColors defines the color scheme for rendering scene elements.
// Wire colors come from the routes themselves, keyed by net class.
type SchematicColors struct {
	Background color.NRGBA
	Body       color.NRGBA
	BodyFill   color.NRGBA
	Header     color.NRGBA
	Pin        color.NRGBA
	Selection  color.NRGBA
}

// GetSchematicColors returns the color scheme for the given theme.
func GetSchematicColors(theme Theme) *SchematicColors {
	if theme == ThemeDark {
		return &SchematicColors{
			Background: color.NRGBA{R: 0x1E, G: 0x1E, B: 0x22, A: 0xFF},
			Body:       color.NRGBA{R: 0xC8, G: 0xA0, B: 0x30, A: 0xFF},
			BodyFill:   color.NRGBA{R: 0x2A, G: 0x28, B: 0x20, A: 0xFF},
			Header:     color.NRGBA{R: 0x80, G: 0x70, B: 0x40, A: 0xFF},
			Pin:        color.NRGBA{R: 0xD0, G: 0x40, B: 0x40, A: 0xFF},
			Selection:  color.NRGBA{R: 0x40, G: 0xA0, B: 0xFF, A: 0xFF},
		}
	}
	return &SchematicColors{
		Background: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Body:       color.NRGBA{R: 0x84, G: 0x00, B: 0x00, A: 0xFF},
		BodyFill:   color.NRGBA{R: 0xFF, G: 0xFF, B: 0xC2, A: 0xFF},
		Header:     color.NRGBA{R: 0xB0, G: 0x60, B: 0x00, A: 0xFF},
		Pin:        color.NRGBA{R: 0x84, G: 0x00, B: 0x00, A: 0xFF},
		Selection:  color.NRGBA{R: 0x00, G: 0x60, B: 0xD0, A: 0xFF},
	}
}
