package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"fastdesign/internal/fast/styles"
)

// Page renders a Fast page shell: the bundled stylesheet, a header painted
// with the style's header colors, a theme picker, the content, and the Bokeh
// theme as an inline JSON document for client-side charts.
func Page(title string, bundle styles.Bundle, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		bokeh, err := json.Marshal(bundle.Bokeh)
		if err != nil {
			return fmt.Errorf("encode bokeh theme: %w", err)
		}

		s := bundle.Style
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		fmt.Fprintf(&b, "<title>%s</title>", templ.EscapeString(title))
		fmt.Fprintf(&b, "<style>%s</style>", bundle.CSS)
		b.WriteString("</head>")
		fmt.Fprintf(&b, "<body class=\"%s\" style=\"%s\">",
			bodyClass(bundle.Name),
			templ.EscapeString("--accent-fill-rest: "+s.AccentBaseColor+"; --font-family: "+s.Font+"; "+
				"background-color: "+s.BackgroundColor+"; color: "+s.NeutralForegroundRest+";"))
		fmt.Fprintf(&b, "<header id=\"header\" style=\"%s\">",
			templ.EscapeString("background-color: "+s.HeaderBackground+"; color: "+s.HeaderColor+";"))
		fmt.Fprintf(&b, "<h1>%s</h1>", templ.EscapeString(title))
		b.WriteString(themePicker(bundle.Name))
		b.WriteString("</header><main>")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}

		b.Reset()
		b.WriteString("</main>")
		fmt.Fprintf(&b, "<script type=\"application/json\" id=\"bokeh-theme\">%s</script>", bokeh)
		b.WriteString("</body></html>")
		_, err = io.WriteString(w, b.String())
		return err
	})
}

// Accordion renders a Fast accordion item using the style's expanded and
// collapsed icons.
func Accordion(style styles.Style, heading string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<fast-accordion><fast-accordion-item expanded>")
		fmt.Fprintf(&b, "<h3 slot=\"heading\">%s</h3>", templ.EscapeString(heading))
		b.WriteString(style.ExpandedIcon)
		b.WriteString(style.CollapsedIcon)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</fast-accordion-item></fast-accordion>")
		return err
	})
}

// Swatches lists the style's colors, one chip per field.
func Swatches(style styles.Style) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<ul class=\"swatches\">")
		for _, sw := range swatches(style) {
			fmt.Fprintf(&b, "<li data-field=\"%s\"><span class=\"chip\" style=\"%s\"></span>%s</li>",
				sw.field,
				templ.EscapeString("background-color: "+sw.value+";"),
				templ.EscapeString(sw.field+": "+sw.value))
		}
		b.WriteString("</ul>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

type swatch struct {
	field string
	value string
}

func swatches(s styles.Style) []swatch {
	return []swatch{
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

func bodyClass(theme string) string {
	return "fast-theme fast-theme-" + ThemeByID(theme).ID
}

func themePicker(active string) string {
	var b strings.Builder
	b.WriteString("<form method=\"post\" action=\"/preferences\" class=\"theme-picker\"><select name=\"theme\">")
	for _, option := range ThemeOptions() {
		selected := ""
		if option.ID == ThemeByID(active).ID {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\" title=\"%s\"%s>%s</option>",
			option.ID, templ.EscapeString(option.Description), selected, templ.EscapeString(option.Label))
	}
	b.WriteString("</select><button type=\"submit\">Apply</button></form>")
	return b.String()
}
