package layout

import (
	"sort"

	"fastdesign/models"
)

// ThemeDefinition describes a Fast theme offered in the theme picker.
type ThemeDefinition struct {
	ID          string
	Label       string
	Description string
}

var themeRegistry = map[string]ThemeDefinition{
	models.ThemeDefault: {
		ID:          models.ThemeDefault,
		Label:       "Default",
		Description: "White canvas with charcoal text and a green header.",
	},
	models.ThemeDark: {
		ID:          models.ThemeDark,
		Label:       "Dark",
		Description: "Near-black canvas with light grey text.",
	},
}

// ThemeByID returns a definition for the provided identifier, falling back to the default theme.
func ThemeByID(id string) ThemeDefinition {
	return themeRegistry[models.NormalizeTheme(id)]
}

// ThemeOptions exposes all theme definitions sorted by label for form rendering.
func ThemeOptions() []ThemeDefinition {
	options := make([]ThemeDefinition, 0, len(themeRegistry))
	for _, def := range themeRegistry {
		options = append(options, def)
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}
