package styles

import (
	"fmt"
	"io/fs"
)

// Bundle is everything the templates need for one theme, computed once.
type Bundle struct {
	Name  string
	CSS   string
	Style Style
	Bokeh BokehTheme
}

// Bundles holds the default and dark bundles.
type Bundles struct {
	Default Bundle
	Dark    Bundle
}

// LoadBundles reads both stylesheet variants from fsys and derives the matching
// style and Bokeh theme. A missing stylesheet fails the whole load.
func LoadBundles(fsys fs.FS) (Bundles, error) {
	def, err := loadBundle(fsys, ThemeDefault)
	if err != nil {
		return Bundles{}, err
	}
	dark, err := loadBundle(fsys, ThemeDark)
	if err != nil {
		return Bundles{}, err
	}
	return Bundles{Default: def, Dark: dark}, nil
}

func loadBundle(fsys fs.FS, theme string) (Bundle, error) {
	css, err := ReadCSS(fsys, theme)
	if err != nil {
		return Bundle{}, fmt.Errorf("load %s bundle: %w", theme, err)
	}
	style := StyleFor(theme)
	return Bundle{
		Name:  theme,
		CSS:   css,
		Style: style,
		Bokeh: style.BokehTheme(),
	}, nil
}

// Get returns the bundle for theme, falling back to the default bundle.
func (b Bundles) Get(theme string) Bundle {
	if ResolveTheme(theme) == ThemeDark {
		return b.Dark
	}
	return b.Default
}
