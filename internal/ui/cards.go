package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/catalog"
)

// renderGrid renders every category group as a header badge followed by rows
// of cards. Line counts must stay in step with gridLayout.lineOf.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	var b strings.Builder

	for gi, grp := range m.grid.groups {
		header := styles.Badge(grp.Category) + " " +
			styles.FaintText.Render(fmt.Sprintf("%d", len(grp.Records)))
		b.WriteString(header)
		b.WriteString("\n")

		for start := 0; start < len(grp.Records); start += m.grid.cols {
			end := min(start+m.grid.cols, len(grp.Records))
			cards := make([]string, 0, end-start)
			for i := start; i < end; i++ {
				if i > start {
					cards = append(cards, strings.Repeat(" ", cardGap))
				}
				focused := m.grid.flat(cardPos{gi, i}) == m.cursor
				cards = append(cards, m.renderCard(grp.Records[i], focused))
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderCard renders one record as a two-line bordered card: name, then
// number and categories.
func (m Model) renderCard(rec catalog.Record, focused bool) string {
	styles := m.theme.Styles()
	style := styles.Card
	nameStyle := styles.Text.Bold(true)
	if focused {
		style = styles.CardFocus
		nameStyle = styles.AccentText.Bold(true)
	}
	// border (2) + padding (2)
	inner := cardWidth - 4
	if focused {
		nameStyle = nameStyle.Background(lipgloss.Color(m.theme.FocusBg))
	}

	name := nameStyle.Render(truncate(displayName(rec.Name), inner))
	meta := truncate(dexNumber(rec.ID)+" "+strings.Join(rec.Categories, "/"), inner)
	metaLine := styles.FaintText.Render(meta)
	if focused {
		metaLine = styles.MutedText.Background(lipgloss.Color(m.theme.FocusBg)).Render(meta)
	}

	return style.Width(cardWidth - 2).Render(name + "\n" + metaLine)
}
