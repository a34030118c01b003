package styles

import (
	"fmt"
	"sort"
)

// Style holds the colors, font and icons used to style the Fast templates.
// The zero value is not meaningful; build one with New.
type Style struct {
	BackgroundColor       string `json:"background_color"`
	Color                 string `json:"color"`
	AccentBaseColor       string `json:"accent_base_color"`
	NeutralFillCardRest   string `json:"neutral_fill_card_rest"`
	NeutralFocus          string `json:"neutral_focus"`
	NeutralForegroundRest string `json:"neutral_foreground_rest"`
	ExpandedIcon          string `json:"expanded_icon"`
	CollapsedIcon         string `json:"collapsed_icon"`
	Font                  string `json:"font"`
	HeaderColor           string `json:"header_color"`
	HeaderBackground      string `json:"header_background"`
}

// Option customizes a Style during New.
type Option func(*Style) error

// New returns the default style with opts applied in order. Every color field
// is validated once all options have run.
func New(opts ...Option) (Style, error) {
	s := Style{
		BackgroundColor:       "#ffffff",
		Color:                 "#00aa41",
		AccentBaseColor:       "#E1477E",
		NeutralFillCardRest:   "#F7F7F7",
		NeutralFocus:          "#888888",
		NeutralForegroundRest: "#2B2B2B",
		ExpandedIcon:          ExpandedIcon,
		CollapsedIcon:         CollapsedIcon,
		Font:                  "Open Sans, sans-serif",
		HeaderColor:           "#ffffff",
		HeaderBackground:      "#1B5E20",
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&s); err != nil {
			return Style{}, err
		}
	}

	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Validate returns a *ColorError for the first color field that does not hold
// a hex or named color.
func (s Style) Validate() error {
	for _, f := range s.colorFields() {
		if err := checkColor(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

type namedValue struct {
	name  string
	value string
}

func (s Style) colorFields() []namedValue {
	return []namedValue{
		{"background_color", s.BackgroundColor},
		{"color", s.Color},
		{"accent_base_color", s.AccentBaseColor},
		{"neutral_fill_card_rest", s.NeutralFillCardRest},
		{"neutral_focus", s.NeutralFocus},
		{"neutral_foreground_rest", s.NeutralForegroundRest},
		{"header_color", s.HeaderColor},
		{"header_background", s.HeaderBackground},
	}
}

// WithBackgroundColor and the other With* setters replace a single field.
// Colors are checked by New, not by the option itself.
func WithBackgroundColor(c string) Option {
	return func(s *Style) error { s.BackgroundColor = c; return nil }
}

func WithColor(c string) Option {
	return func(s *Style) error { s.Color = c; return nil }
}

func WithAccentBaseColor(c string) Option {
	return func(s *Style) error { s.AccentBaseColor = c; return nil }
}

func WithNeutralFillCardRest(c string) Option {
	return func(s *Style) error { s.NeutralFillCardRest = c; return nil }
}

func WithNeutralFocus(c string) Option {
	return func(s *Style) error { s.NeutralFocus = c; return nil }
}

func WithNeutralForegroundRest(c string) Option {
	return func(s *Style) error { s.NeutralForegroundRest = c; return nil }
}

func WithHeaderColor(c string) Option {
	return func(s *Style) error { s.HeaderColor = c; return nil }
}

func WithHeaderBackground(c string) Option {
	return func(s *Style) error { s.HeaderBackground = c; return nil }
}

func WithFont(font string) Option {
	return func(s *Style) error { s.Font = font; return nil }
}

func WithExpandedIcon(svg string) Option {
	return func(s *Style) error { s.ExpandedIcon = svg; return nil }
}

func WithCollapsedIcon(svg string) Option {
	return func(s *Style) error { s.CollapsedIcon = svg; return nil }
}

var fieldOptions = map[string]func(string) Option{
	"background_color":        WithBackgroundColor,
	"color":                   WithColor,
	"accent_base_color":       WithAccentBaseColor,
	"neutral_fill_card_rest":  WithNeutralFillCardRest,
	"neutral_focus":           WithNeutralFocus,
	"neutral_foreground_rest": WithNeutralForegroundRest,
	"header_color":            WithHeaderColor,
	"header_background":       WithHeaderBackground,
	"font":                    WithFont,
	"expanded_icon":           WithExpandedIcon,
	"collapsed_icon":          WithCollapsedIcon,
}

// IsField reports whether name is the json name of a Style field.
func IsField(name string) bool {
	_, ok := fieldOptions[name]
	return ok
}

// WithOverrides sets fields by their json names. Unknown names are an error.
func WithOverrides(values map[string]string) Option {
	return func(s *Style) error {
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			option, ok := fieldOptions[key]
			if !ok {
				return fmt.Errorf("unknown style field %q", key)
			}
			if err := option(values[key])(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// Overlay returns a copy of s with overrides applied and validated.
func (s Style) Overlay(overrides map[string]string) (Style, error) {
	out := s
	if err := WithOverrides(overrides)(&out); err != nil {
		return Style{}, err
	}
	if err := out.Validate(); err != nil {
		return Style{}, err
	}
	return out, nil
}

var (
	defaultStyle = mustNew()
	darkStyle    = mustNew(
		WithBackgroundColor("#181818"),
		WithColor("#ffffff"),
		WithNeutralFillCardRest("#212121"),
		WithNeutralFocus("#717171"),
		WithNeutralForegroundRest("#e5e5e5"),
	)
)

func mustNew(opts ...Option) Style {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultStyle returns the light Fast style.
func DefaultStyle() Style {
	return defaultStyle
}

// DarkStyle returns the dark Fast style.
func DarkStyle() Style {
	return darkStyle
}

// StyleFor returns the style registered for theme, falling back to the
// default style.
func StyleFor(theme string) Style {
	if ResolveTheme(theme) == ThemeDark {
		return darkStyle
	}
	return defaultStyle
}
