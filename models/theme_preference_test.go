package models

import "testing"

func TestValidTheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"default", ThemeDefault, true},
		{"dark", ThemeDark, true},
		{"upper case is not canonical", "DARK", false},
		{"unknown", "sepia", false},
		{"empty", "", false},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidTheme(tt.value); got != tt.want {
				t.Fatalf("ValidTheme(%q) = %t, want %t", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeTheme(t *testing.T) {
	t.Parallel()

	if got := NormalizeTheme("Dark"); got != ThemeDark {
		t.Fatalf("NormalizeTheme returned %q, want %q", got, ThemeDark)
	}

	if got := NormalizeTheme(" dark "); got != ThemeDefault {
		t.Fatalf("NormalizeTheme returned %q for padded input, want %q", got, ThemeDefault)
	}

	if got := NormalizeTheme("  invalid  "); got != ThemeDefault {
		t.Fatalf("NormalizeTheme returned %q, want %q", got, ThemeDefault)
	}
}
