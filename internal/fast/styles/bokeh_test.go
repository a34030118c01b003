package styles

import (
	"encoding/json"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestBokehThemeIsPure(t *testing.T) {
	t.Parallel()

	s := DefaultStyle()
	first := s.BokehTheme()
	second := s.BokehTheme()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected repeated projections to be equal")
	}

	first.Attrs["Title"]["text_color"] = "#000000"
	if s.BokehTheme().Attrs["Title"]["text_color"] != s.NeutralForegroundRest {
		t.Fatal("expected projection to allocate new maps")
	}
}

func TestPackageBokehThemesAreIndependentCopies(t *testing.T) {
	t.Parallel()

	for name, project := range map[string]func() BokehTheme{
		"default": DefaultBokehTheme,
		"dark":    DarkBokehTheme,
	} {
		theme := project()
		want := theme.Attrs["Figure"]["background_fill_color"]
		theme.Attrs["Figure"]["background_fill_color"] = "#000001"
		if got := project().Attrs["Figure"]["background_fill_color"]; got != want {
			t.Fatalf("%s: mutation leaked into later call, got %v", name, got)
		}
	}
}

func TestBokehThemeElements(t *testing.T) {
	t.Parallel()

	theme := DefaultBokehTheme()
	want := map[string]int{
		"Figure":   6,
		"Grid":     2,
		"Axis":     14,
		"Legend":   8,
		"ColorBar": 9,
		"Title":    3,
	}
	if len(theme.Attrs) != len(want) {
		t.Fatalf("got %d elements, want %d", len(theme.Attrs), len(want))
	}
	for element, count := range want {
		attrs, ok := theme.Attrs[element]
		if !ok {
			t.Fatalf("missing element %s", element)
		}
		if len(attrs) != count {
			t.Fatalf("%s has %d attributes, want %d", element, len(attrs), count)
		}
	}
}

func TestBokehThemeValues(t *testing.T) {
	t.Parallel()

	s := DarkStyle()
	attrs := s.BokehTheme().Attrs

	tests := []struct {
		element string
		key     string
		want    any
	}{
		{"Figure", "background_fill_color", s.BackgroundColor},
		{"Figure", "border_fill_color", s.NeutralFillCardRest},
		{"Figure", "border_fill_alpha", 0},
		{"Figure", "outline_line_color", s.NeutralFocus},
		{"Figure", "outline_line_alpha", 0.5},
		{"Figure", "outline_line_width", 1},
		{"Grid", "grid_line_color", s.NeutralFocus},
		{"Grid", "grid_line_alpha", 0.25},
		{"Axis", "major_label_text_font_size", "1.025em"},
		{"Axis", "axis_label_standoff", 10},
		{"Axis", "axis_label_text_font_size", "1.25em"},
		{"Axis", "axis_label_text_font_style", "normal"},
		{"Axis", "major_label_text_font", s.Font},
		{"Legend", "spacing", 8},
		{"Legend", "glyph_width", 15},
		{"Legend", "label_standoff", 8},
		{"Legend", "background_fill_alpha", 0.25},
		{"ColorBar", "title_text_font_style", "normal"},
		{"ColorBar", "bar_line_alpha", 0},
		{"Title", "text_font_size", "1.15em"},
		{"Title", "text_font", s.Font},
	}
	for _, tt := range tests {
		if got := attrs[tt.element][tt.key]; got != tt.want {
			t.Fatalf("%s.%s = %v, want %v", tt.element, tt.key, got, tt.want)
		}
	}
}

func TestForegroundOverridePropagates(t *testing.T) {
	t.Parallel()

	s, err := New(WithNeutralForegroundRest("#123456"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	attrs := s.BokehTheme().Attrs

	derived := map[string][]string{
		"Axis": {
			"major_tick_line_color", "minor_tick_line_color", "axis_line_color",
			"major_label_text_color", "axis_label_text_color",
		},
		"Legend":   {"label_text_color"},
		"ColorBar": {"title_text_color", "major_label_text_color"},
		"Title":    {"text_color"},
	}
	for element, keys := range derived {
		for _, key := range keys {
			if got := attrs[element][key]; got != "#123456" {
				t.Fatalf("%s.%s = %v, want #123456", element, key, got)
			}
		}
	}
}

func TestBokehThemeJSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(DarkBokehTheme())
	if err != nil {
		t.Fatalf("marshal theme: %v", err)
	}
	var decoded map[string]map[string]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal theme: %v", err)
	}
	if decoded["attrs"]["Figure"]["background_fill_color"] != "#181818" {
		t.Fatalf("unexpected json document: %s", data)
	}
}

func TestLoadBundles(t *testing.T) {
	t.Parallel()

	bundles, err := LoadBundles(testFS())
	if err != nil {
		t.Fatalf("LoadBundles error = %v", err)
	}
	if bundles.Default.Name != ThemeDefault || bundles.Dark.Name != ThemeDark {
		t.Fatalf("unexpected bundle names: %q, %q", bundles.Default.Name, bundles.Dark.Name)
	}
	if bundles.Get("DARK").Style != DarkStyle() {
		t.Fatal("expected dark bundle to carry the dark style")
	}
	if !reflect.DeepEqual(bundles.Get("bogus").Bokeh, DefaultBokehTheme()) {
		t.Fatal("expected unknown theme to resolve to the default bundle")
	}
}

func TestLoadBundlesFailsOnMissingRoot(t *testing.T) {
	t.Parallel()

	fsys := testFS()
	delete(fsys, darkRootFile)
	if _, err := LoadBundles(fsys); err == nil {
		t.Fatal("expected error when the dark root stylesheet is missing")
	}

	if _, err := LoadBundles(fstest.MapFS{}); err == nil {
		t.Fatal("expected error for empty filesystem")
	}
}
