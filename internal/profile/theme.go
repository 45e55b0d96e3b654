// File: internal/profile/theme.go
package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Font presets a pro page can use.
const (
	FontDefault = "default"
	FontModern  = "modern"
	FontClassic = "classic"
)

// DefaultAccentColor is the brand green used when a pro has not picked a color.
const DefaultAccentColor = "#0A362B"

// Theme is the visual configuration of one pro's page.
type Theme struct {
	AccentColor     string  `json:"accentColor" binding:"required,hexcolor"`
	LogoURL         *string `json:"logoUrl" binding:"omitempty,url"`
	FontPreset      string  `json:"fontPreset" binding:"required,oneof=default modern classic"`
	DarkModeEnabled bool    `json:"darkModeEnabled"`
}

// ThemeUpdate is a partial theme; nil fields keep the current value.
// An empty logoUrl clears the logo.
type ThemeUpdate struct {
	AccentColor     *string `json:"accentColor" binding:"omitempty,hexcolor"`
	LogoURL         *string `json:"logoUrl" binding:"omitempty,url"`
	FontPreset      *string `json:"fontPreset" binding:"omitempty,oneof=default modern classic"`
	DarkModeEnabled *bool   `json:"darkModeEnabled"`
}

// DefaultTheme returns a fresh copy of the platform theme.
func DefaultTheme() Theme {
	return Theme{
		AccentColor:     DefaultAccentColor,
		FontPreset:      FontDefault,
		DarkModeEnabled: true,
	}
}

// Merge applies the set fields of u over t.
func (u ThemeUpdate) Merge(t Theme) Theme {
	if u.AccentColor != nil {
		t.AccentColor = *u.AccentColor
	}
	if u.LogoURL != nil {
		if *u.LogoURL == "" {
			t.LogoURL = nil
		} else {
			logo := *u.LogoURL
			t.LogoURL = &logo
		}
	}
	if u.FontPreset != nil {
		t.FontPreset = *u.FontPreset
	}
	if u.DarkModeEnabled != nil {
		t.DarkModeEnabled = *u.DarkModeEnabled
	}
	return t
}

var themeValidate = newThemeValidator()

func newThemeValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ValidateTheme checks a complete theme with the same rules gin applies to updates.
func ValidateTheme(t Theme) error {
	if err := themeValidate.Struct(t); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	return nil
}
