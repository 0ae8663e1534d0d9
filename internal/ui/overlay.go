package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/catalog"
)

// renderOverlay renders the detail modal for the selected record.
func (m Model) renderOverlay(rec catalog.Record) string {
	styles := m.theme.Styles()
	labelStyle := styles.MutedText.Width(9)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(displayName(rec.Name)))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(dexNumber(rec.ID)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	badges := make([]string, 0, len(rec.Categories))
	for _, c := range rec.Categories {
		badges = append(badges, styles.Badge(c))
	}
	b.WriteString(labelStyle.Render("Types"))
	if len(badges) == 0 {
		b.WriteString(styles.FaintText.Render("none"))
	} else {
		b.WriteString(strings.Join(badges, " "))
	}
	b.WriteString("\n")

	rows := []struct{ label, value string }{
		{"Height", fmt.Sprintf("%.1f m", rec.HeightMeters())},
		{"Weight", fmt.Sprintf("%.1f kg", rec.WeightKilograms())},
		{"Sprite", spriteText(rec.SpriteURL)},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(styles.Text.Render(r.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := "esc close   y copy name"
	if m.status != "" {
		footer = m.status
	}
	b.WriteString(styles.FaintText.Render(footer))

	modalWidth := min(max(40, lipgloss.Width(rec.SpriteURL)+14), max(40, m.width-4))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.TypeColor(firstCategory(rec)))).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func spriteText(url string) string {
	if strings.TrimSpace(url) == "" {
		return "no image"
	}
	return url
}

func firstCategory(rec catalog.Record) string {
	if len(rec.Categories) == 0 {
		return ""
	}
	return rec.Categories[0]
}
