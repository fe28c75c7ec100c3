package render

import (
	"fmt"
	"strings"
)

// dividerWidth is the character width of the horizontal tooltip dividers.
// All table columns are sized to stay within it.
const dividerWidth = 36

// Escape makes text safe for insertion into Pango markup.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// Colored wraps already-padded cell text in a foreground color span. The
// span adds no visible width, so padding must be applied to the text
// before wrapping.
func Colored(color, text string) string {
	return fmt.Sprintf("<span foreground='%s'>%s</span>", color, text)
}

// Bold wraps text in bold markup.
func Bold(text string) string {
	return "<b>" + text + "</b>"
}

// Divider returns the fixed-width horizontal rule line.
func Divider() string {
	return strings.Repeat("─", dividerWidth)
}

// PadLeft right-aligns s in a cell of the given width.
func PadLeft(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// PadRight left-aligns s in a cell of the given width.
func PadRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
