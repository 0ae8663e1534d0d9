// Package ui provides the terminal interface for dexter.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model is a thin host around
// state.Controller: every gesture becomes a controller transition, and the
// model re-reads a Snapshot afterwards. Network work (generation loads and
// exact lookups) runs as tea.Cmds so the render loop never blocks; their
// results arrive as loadDoneMsg and lookupDoneMsg.
//
// # Package Structure
//
//   - app.go: Model, Options, Update routing, commands, and Run
//   - header.go: header bar (logo, generation tabs, load status), content area, footer
//   - search.go: search box, suggestion dropdown, and search key handling
//   - cards.go: grouped card grid rendering
//   - layout.go: grid geometry and cursor movement across groups
//   - overlay.go: detail modal for the selected record
//   - help.go: key binding overlay
//   - keys.go, theme.go, style_helpers.go, strings.go: bindings, palettes, and text helpers
//
// # Focus Layers
//
// Keys are routed to the first active layer: help overlay, detail overlay,
// search box, then the card grid. ctrl+c always quits.
//
// # Key Bindings
//
//   - 1-9, [ and ]: select a generation; r reloads the current one
//   - arrows or hjkl, g/G, pgup/pgdown: move the card cursor
//   - enter: open the card under the cursor
//   - /: focus search; up/down highlight a suggestion, enter picks it or
//     looks the typed name up on the service, esc dismisses suggestions
//   - in the detail overlay: esc, enter, or q close it; y copies the name
//   - T: cycle theme (saved to prefs); ?: help; q: quit
package ui
