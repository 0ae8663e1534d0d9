package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// enterSearch focuses the search box. The term typed earlier is kept.
func (m Model) enterSearch() (tea.Model, tea.Cmd) {
	m.searching = true
	m.suggestionIdx = -1
	m.search.SetValue(m.snap.Term)
	m.search.CursorEnd()
	cmd := m.search.Focus()
	m.refresh()
	return m, cmd
}

// leaveSearch blurs the search box without touching the term.
func (m *Model) leaveSearch() {
	m.searching = false
	m.suggestionIdx = -1
	m.search.Blur()
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.ctl.DismissSuggestions()
		m.leaveSearch()
		m.pull()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.SuggestionDown):
		if n := len(m.snap.Suggestions); n > 0 {
			m.suggestionIdx = (m.suggestionIdx + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.SuggestionUp):
		if n := len(m.snap.Suggestions); n > 0 {
			if m.suggestionIdx <= 0 {
				m.suggestionIdx = n - 1
			} else {
				m.suggestionIdx--
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.suggestionIdx >= 0 && m.suggestionIdx < len(m.snap.Suggestions) {
			rec := m.snap.Suggestions[m.suggestionIdx]
			m.ctl.PickSuggestion(rec)
			m.search.SetValue(rec.Name)
			m.leaveSearch()
			m.pull()
			m.refresh()
			return m, nil
		}
		if strings.TrimSpace(m.search.Value()) == "" {
			return m, nil
		}
		m.status = "Looking up " + strings.TrimSpace(m.search.Value()) + "..."
		return m, lookupCmd(m.ctx, m.ctl)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.ctl.TypeSearch(after)
		m.ctl.ClearNotice()
		m.status = ""
		m.suggestionIdx = -1
		m.pull()
		m.refresh()
	}
	return m, cmd
}

func (m Model) dropdownHeight() int {
	return len(m.snap.Suggestions)
}

// renderSearchLine renders the search box with the lookup notice on the right.
func (m Model) renderSearchLine() string {
	styles := m.theme.Styles()
	b := newBar(m.theme.Background)

	var left string
	if m.searching {
		left = m.search.View()
	} else if m.snap.Term != "" {
		left = b.text("/ ", styles.FaintText) + b.text(m.snap.Term, styles.MutedText)
	} else {
		left = b.text("/ to search", styles.FaintText)
	}

	var right string
	if m.snap.Notice != "" {
		right = b.text(truncate(m.snap.Notice, max(10, m.width/2)), styles.WarningText)
	}
	return b.fill(b.spread(left, right, m.width), m.width)
}

// renderDropdown lists the current suggestions under the search line.
func (m Model) renderDropdown() string {
	if len(m.snap.Suggestions) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	b := newBar(m.theme.SurfaceAlt)
	focus := newBar(m.theme.FocusBg)

	lines := make([]string, 0, len(m.snap.Suggestions))
	for i, rec := range m.snap.Suggestions {
		row := b
		marker := "  "
		nameStyle := styles.Text
		if i == m.suggestionIdx {
			row = focus
			marker = "> "
			nameStyle = styles.AccentText.Bold(true)
		}
		parts := []string{
			row.text(marker+dexNumber(rec.ID), styles.FaintText),
			row.text(displayName(rec.Name), nameStyle),
		}
		for _, c := range rec.Categories {
			parts = append(parts, row.text(c, lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.TypeColor(c)))))
		}
		lines = append(lines, row.fill(row.join(parts, 1), m.width))
	}
	return strings.Join(lines, "\n")
}
