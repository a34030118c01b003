// Package styles provides the Fast design system stylesheets, the style
// parameters used by the Fast templates and the Bokeh theme derived from them.
package styles

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"fastdesign/internal/fast/assets"
)

const (
	// ThemeDefault is the light palette and the fallback for unknown names.
	ThemeDefault = "default"
	// ThemeDark is the dark palette.
	ThemeDark = "dark"

	defaultRootFile = "fast_root_default.css"
	darkRootFile    = "fast_root_dark.css"
)

// baseFiles are read before the theme root file. The root file always comes
// last so its rules win the cascade.
var baseFiles = []string{
	"fast_root.css",
	"fast_bokeh.css",
	"fast_bokeh_slickgrid.css",
	"fast_panel.css",
	"fast_panel_dataframe.css",
	"fast_panel_widgets.css",
	"fast_panel_markdown.css",
	"fast_awesome.css",
}

// ResolveTheme maps a theme name to ThemeDark or ThemeDefault. Only an exact,
// case-insensitive "dark" selects ThemeDark; surrounding whitespace is not
// stripped.
func ResolveTheme(theme string) string {
	if strings.EqualFold(theme, ThemeDark) {
		return ThemeDark
	}
	return ThemeDefault
}

// Themes lists the supported theme names.
func Themes() []string {
	return []string{ThemeDefault, ThemeDark}
}

// CSSFiles returns the ordered stylesheet file names for the theme.
func CSSFiles(theme string) []string {
	root := defaultRootFile
	if ResolveTheme(theme) == ThemeDark {
		root = darkRootFile
	}
	files := make([]string, 0, len(baseFiles)+1)
	files = append(files, baseFiles...)
	return append(files, root)
}

// ReadCSS concatenates the stylesheets for theme read from fsys, joined by
// newlines. Any missing or unreadable file fails the whole read.
func ReadCSS(fsys fs.FS, theme string) (string, error) {
	if fsys == nil {
		return "", fmt.Errorf("read fast css: nil filesystem")
	}

	files := CSSFiles(theme)
	contents := make([]string, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", fmt.Errorf("read fast css %s: %w", name, err)
		}
		contents = append(contents, string(data))
	}

	return strings.Join(contents, "\n"), nil
}

var (
	defaultCSS = sync.OnceValues(func() (string, error) {
		return ReadCSS(assets.CSS, ThemeDefault)
	})
	darkCSS = sync.OnceValues(func() (string, error) {
		return ReadCSS(assets.CSS, ThemeDark)
	})
)

// DefaultCSS returns the embedded default stylesheet bundle. It is read once
// per process.
func DefaultCSS() (string, error) {
	return defaultCSS()
}

// DarkCSS returns the embedded dark stylesheet bundle. It is read once per
// process.
func DarkCSS() (string, error) {
	return darkCSS()
}
