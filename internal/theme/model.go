// File: internal/theme/model.go
package theme

import (
	"time"

	"teeup_backend/internal/profile"
)

// Record is the stored theme of one pro, keyed by profile slug.
type Record struct {
	Slug            string    `gorm:"primaryKey;type:varchar(100)"`
	AccentColor     string    `gorm:"type:varchar(9);not null"`
	LogoURL         *string   `gorm:"type:text"`
	FontPreset      string    `gorm:"type:varchar(20);not null"`
	DarkModeEnabled bool      `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Record) TableName() string { return "pro_themes" }

func (r Record) toTheme() profile.Theme {
	return profile.Theme{
		AccentColor:     r.AccentColor,
		LogoURL:         r.LogoURL,
		FontPreset:      r.FontPreset,
		DarkModeEnabled: r.DarkModeEnabled,
	}
}

func newRecord(slug string, t profile.Theme) Record {
	return Record{
		Slug:            slug,
		AccentColor:     t.AccentColor,
		LogoURL:         t.LogoURL,
		FontPreset:      t.FontPreset,
		DarkModeEnabled: t.DarkModeEnabled,
	}
}
