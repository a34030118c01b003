package styles

// Attrs maps Bokeh model attribute names to values.
type Attrs map[string]any

// BokehTheme is the JSON document accepted by bokeh.themes.Theme.
type BokehTheme struct {
	Attrs map[string]Attrs `json:"attrs"`
}

// BokehTheme projects the style onto a Bokeh theme. Every call returns freshly
// allocated maps.
func (s Style) BokehTheme() BokehTheme {
	fg := s.NeutralForegroundRest
	font := s.Font

	return BokehTheme{
		Attrs: map[string]Attrs{
			"Figure": {
				"background_fill_color": s.BackgroundColor,
				"border_fill_color":     s.NeutralFillCardRest,
				"border_fill_alpha":     0,
				"outline_line_color":    s.NeutralFocus,
				"outline_line_alpha":    0.5,
				"outline_line_width":    1,
			},
			"Grid": {
				"grid_line_color": s.NeutralFocus,
				"grid_line_alpha": 0.25,
			},
			"Axis": {
				"major_tick_line_alpha":      0,
				"major_tick_line_color":      fg,
				"minor_tick_line_alpha":      0,
				"minor_tick_line_color":      fg,
				"axis_line_alpha":            0,
				"axis_line_color":            fg,
				"major_label_text_color":     fg,
				"major_label_text_font":      font,
				"major_label_text_font_size": "1.025em",
				"axis_label_standoff":        10,
				"axis_label_text_color":      fg,
				"axis_label_text_font":       font,
				"axis_label_text_font_size":  "1.25em",
				"axis_label_text_font_style": "normal",
			},
			"Legend": {
				"spacing":               8,
				"glyph_width":           15,
				"label_standoff":        8,
				"label_text_color":      fg,
				"label_text_font":       font,
				"label_text_font_size":  "1.025em",
				"border_line_alpha":     0,
				"background_fill_alpha": 0.25,
			},
			"ColorBar": {
				"title_text_color":           fg,
				"title_text_font":            font,
				"title_text_font_size":       "1.025em",
				"title_text_font_style":      "normal",
				"major_label_text_color":     fg,
				"major_label_text_font":      font,
				"major_label_text_font_size": "1.025em",
				"major_tick_line_alpha":      0,
				"bar_line_alpha":             0,
			},
			"Title": {
				"text_color":     fg,
				"text_font":      font,
				"text_font_size": "1.15em",
			},
		},
	}
}

// DefaultBokehTheme returns a fresh projection of DefaultStyle. Bundles keep
// the copy computed at startup.
func DefaultBokehTheme() BokehTheme {
	return defaultStyle.BokehTheme()
}

// DarkBokehTheme returns a fresh projection of DarkStyle.
func DarkBokehTheme() BokehTheme {
	return darkStyle.BokehTheme()
}
