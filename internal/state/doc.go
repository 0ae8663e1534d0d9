// Package state holds dexter's view controller: the single owner of what
// the UI shows.
//
// # Overview
//
// Controller keeps one Snapshot and changes it only through named
// transitions. The Bubble Tea model never edits view state itself; it calls
// a transition, then reads a fresh Snapshot and renders it.
//
// # Snapshot
//
// A Snapshot groups the view state into three parts:
//
//	Range:     Phase, Generation, Records, Groups, LoadedAt, LoadID, LastError
//	Search:    Term, Suggestions, Notice
//	Selection: Selected, OverlayOpen
//
// Records and Groups always come from the same completed load. Outside
// Loaded both are empty: Loading clears them at once and Error never keeps
// a partial result.
//
// # Transitions
//
//	SelectGeneration   any        -> Loading(gen), suggestions cleared
//	Load               Loading    -> Loaded | Error   (if still current)
//	TypeSearch         term := text; suggestions only while Loaded
//	PickSuggestion     select + open overlay, term := name
//	ClickCard          select + open overlay
//	SubmitSearch       remote exact lookup; select or set Notice
//	DismissOverlay     overlay closed, selection kept
//	DismissSuggestions suggestions cleared
//	ClearNotice        notice cleared
//
// The search term survives a range switch but its suggestions do not. A
// finished load does not bring them back; the next keystroke recomputes
// them against the new corpus.
//
// # Stale Loads
//
// Every SelectGeneration bumps a token and cancels the context of the load
// it supersedes:
//
//	SelectGeneration(II)  token=2  ─┐
//	SelectGeneration(III) token=3   │ cancels II
//	Load(III) finishes             ─┼→ applied (token 3 is current)
//	Load(II) finishes late         ─┘→ ErrSuperseded, nothing changes
//
// Load runs the catalog call without holding the lock and applies its
// result only if the request still carries the current token. A slow load
// for an old generation can never overwrite a newer one, whether it
// finishes with data or with an error.
//
// # Stale Lookups
//
// Exact lookups follow the same rule with their own counter. Every
// selection (PickSuggestion, ClickCard, a successful lookup) and every
// submitted lookup bumps it. A lookup whose answer arrives after the user
// already picked something else returns ErrSuperseded and neither replaces
// Selected nor sets a Notice.
//
// # Concurrency
//
// The UI runs loads and lookups as Bubble Tea commands on their own
// goroutines. All transitions take the controller mutex, and the lock is
// never held across network I/O. Snapshot returns a deep copy (records,
// grouping, suggestions, and the selected record), so the render loop never
// observes a partially applied load and cannot mutate controller state.
//
// # Logging
//
// Each load gets a uuid LoadID. Start, completion, failure, and discarded
// results are logged with that id and the generation number, which makes
// overlapping loads easy to tell apart in the log file.
//
// # Usage Example
//
//	ctl := state.NewController(loader, catalog.DefaultGeneration(), logger)
//	defer ctl.Close()
//
//	go func() { _ = ctl.Load(ctx, ctl.Pending()) }()
//
//	req := ctl.SelectGeneration(gen2)
//	go func() { _ = ctl.Load(ctx, req) }()
//
//	snap := ctl.Snapshot()
//	render(snap)
package state
