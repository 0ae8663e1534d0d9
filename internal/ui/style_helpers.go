package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bar renders segments on a shared background. Lipgloss resets the
// background after each styled segment, so separators and the trailing fill
// are styled explicitly. See https://github.com/charmbracelet/lipgloss/discussions/78
type bar struct {
	bg lipgloss.Color
}

func newBar(color string) bar {
	return bar{bg: lipgloss.Color(color)}
}

func (b bar) text(s string, style lipgloss.Style) string {
	if s == "" {
		return ""
	}
	return style.Background(b.bg).Render(s)
}

func (b bar) gap(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// join joins non-empty parts with n styled spaces.
func (b bar) join(parts []string, n int) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, b.gap(n))
}

// spread places left and right on one line of the given width.
func (b bar) spread(left, right string, width int) string {
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + b.gap(space) + right
}

// fill pads rendered content to width with the background.
func (b bar) fill(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(content)
}
