package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is matched by every color validation failure.
var ErrInvalidColor = errors.New("invalid color")

// ColorError reports a style field holding something that is not a color.
type ColorError struct {
	Field string
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("%s: %q is not a hex or named color", e.Field, e.Value)
}

func (e *ColorError) Unwrap() error {
	return ErrInvalidColor
}

// ValidColor reports whether value is a hex color (#rgb or #rrggbb) or a
// named CSS color.
func ValidColor(value string) bool {
	if strings.HasPrefix(value, "#") {
		// colorful.Hex scans with Sscanf, which skips spaces and stops early
		// on non-hex bytes, so pin the exact shape first.
		if !isHexDigits(value[1:]) {
			return false
		}
		_, err := colorful.Hex(strings.ToLower(value))
		return err == nil
	}
	_, ok := colornames.Map[strings.ToLower(value)]
	return ok
}

func isHexDigits(digits string) bool {
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func checkColor(field, value string) error {
	if !ValidColor(value) {
		return &ColorError{Field: field, Value: value}
	}
	return nil
}
