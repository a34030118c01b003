package models

import (
	"gorm.io/gorm"

	"fastdesign/internal/fast/styles"
)

const (
	ThemeDefault = styles.ThemeDefault
	ThemeDark    = styles.ThemeDark
)

// ThemePreference remembers the theme an anonymous visitor picked.
type ThemePreference struct {
	gorm.Model
	ClientID string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Theme    string `gorm:"type:varchar(16);not null;default:default"`
}

// ValidTheme reports whether value names a known theme exactly.
func ValidTheme(value string) bool {
	return value == ThemeDefault || value == ThemeDark
}

// NormalizeTheme matches value case-insensitively, falling back to ThemeDefault.
func NormalizeTheme(value string) string {
	return styles.ResolveTheme(value)
}
