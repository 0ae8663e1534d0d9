package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/catalog"
	"github.com/five82/dexter/internal/state"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.renderSearchLine(),
	}
	if dd := m.renderDropdown(); dd != "" {
		parts = append(parts, dd)
	}
	parts = append(parts, m.renderContent(), m.renderFooter())
	return strings.Join(parts, "\n")
}

// renderHeader renders the logo, generation tabs, and load status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	b := newBar(m.theme.Surface)

	logo := b.text("DEXTER", styles.Logo.Foreground(lipgloss.Color(m.theme.Text)))

	tabs := make([]string, 0, len(catalog.Generations()))
	for _, gen := range catalog.Generations() {
		label := gen.Roman()
		if gen.Number == m.snap.Generation.Number {
			tabs = append(tabs, b.text("["+label+"]", styles.Text.Bold(true)))
		} else {
			tabs = append(tabs, b.text(label, styles.MutedText))
		}
	}

	left := b.join([]string{logo, b.join(tabs, 1)}, 3)
	return b.fill(b.spread(left, m.statusText(b), m.width), m.width)
}

func (m Model) statusText(b bar) string {
	styles := m.theme.Styles()
	gen := m.snap.Generation

	switch m.snap.Phase {
	case state.PhaseLoading:
		return b.join([]string{
			b.text(m.spinner.View(), styles.WarningText),
			b.text(fmt.Sprintf("Loading %s", gen), styles.Text),
		}, 1)

	case state.PhaseError:
		msg := "LOAD FAILED"
		if m.snap.LastError != nil {
			msg += ": " + truncate(m.snap.LastError.Error(), max(20, m.width/3))
		}
		return b.join([]string{
			b.text(msg, styles.DangerText),
			b.text("r to retry", styles.Text),
		}, 2)

	default:
		parts := []string{
			b.text(gen.String(), styles.Text.Bold(true)),
			b.text(fmt.Sprintf("%d entries", len(m.snap.Records)), styles.Text),
			b.text(fmt.Sprintf("%d types", m.snap.Groups.Len()), styles.Text),
		}
		if !m.snap.LoadedAt.IsZero() {
			parts = append(parts, b.text(m.snap.LoadedAt.Format("15:04:05"), styles.MutedText))
		}
		return b.join(parts, 2)
	}
}

// renderContent renders the card grid or a placeholder for the current phase.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	height := max(1, m.height-chromeHeight-m.dropdownHeight())

	var msg string
	switch m.snap.Phase {
	case state.PhaseLoading:
		msg = styles.MutedText.Render(fmt.Sprintf("%s Fetching %s...", m.spinner.View(), m.snap.Generation))
	case state.PhaseError:
		msg = styles.DangerText.Render("Could not load this generation.") + "\n" +
			styles.MutedText.Render("Press r to retry or pick another generation.")
	default:
		if m.grid.total == 0 {
			msg = styles.MutedText.Render("No entries in this generation.")
		}
	}

	if msg != "" {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	return m.viewport.View()
}

// renderFooter renders key hints and the transient status message.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	b := newBar(m.theme.Surface)

	var hints []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		hints = append(hints, b.text(h.Key, styles.WarningText)+b.gap(1)+b.text(strings.ToLower(h.Desc), styles.MutedText))
	}

	right := ""
	if m.status != "" {
		right = b.text(m.status, styles.AccentText)
	} else {
		right = b.text(m.theme.Name, styles.FaintText)
	}
	return b.fill(b.spread(b.join(hints, 2), right, m.width), m.width)
}
