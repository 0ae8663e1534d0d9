// Package catalog turns the remote roster into the records dexter shows.
//
// # Overview
//
// The package sits between the HTTP client and the view controller. It knows
// which slice of the national roster each generation covers, how to fetch
// that slice, and how to bucket the result by type. It holds no state of its
// own between calls; the controller owns whatever was last loaded.
//
// # Generations
//
// Nine fixed ranges, numbered 1-9:
//
//	Gen I     #1-151      Gen IV    #387-493    Gen VII   #722-809
//	Gen II    #152-251    Gen V     #494-649    Gen VIII  #810-905
//	Gen III   #252-386    Gen VI    #650-721    Gen IX    #906-1025
//
// Generation.Offset and Count give the roster window (offset = Start-1,
// limit = End-Start+1). Next and Prev wrap around, so ] on Gen IX lands on
// Gen I. DefaultGeneration is Gen I.
//
// # Data Flow
//
//	Loader.Load(gen)
//	   │
//	   ├─ FetchRoster(offset, count) ──→ []RosterEntry (name + detail URL)
//	   │
//	   ├─ errgroup fan-out, one FetchPokemon per entry
//	   │     records[i] = RecordFromPokemon(...)   (slot i = roster index i)
//	   │
//	   └─ GroupByCategory(records) ──→ Catalog{Records, Groups, LoadedAt}
//
// Each goroutine writes only its own slot of a preallocated slice, so the
// result keeps roster order no matter which request finishes first and no
// lock is needed. WithMaxInFlight caps concurrency through errgroup's
// SetLimit; zero leaves it unbounded. WithProgress is called after every
// detail record, which is what drives the progress bar of `dexter groups`.
//
// # Failure Semantics
//
// Any single failure fails the whole load. The errgroup context is cancelled
// so outstanding requests stop early, and Load returns a *LoadError:
//
//	errors.Is(err, ErrRosterFetch)   the window request itself failed
//	errors.Is(err, ErrDetailFetch)   one detail request failed (Entry names it)
//	errors.Is(err, <cause>)          the underlying transport or status error
//
// A partial catalog is never returned. A roster that comes back shorter or
// longer than the range is logged as a warning and loaded as-is.
//
// # Grouping
//
// GroupByCategory walks records in order and appends each one to the group
// of every type label it carries, creating groups on first sight:
//
//	bulbasaur [grass poison]   → grass: bulbasaur      poison: bulbasaur
//	charizard [fire flying]    → fire: charizard       flying: charizard
//
// Group order is first-encounter order, and a record's labels keep the order
// the service sent them in, so the same payload always yields the same
// sections. A dual-type record appears in both groups. Grouping values are
// read through Groups, Categories, and Records; Clone gives an independent
// copy for snapshots.
//
// # Search
//
// Suggest is the live search: a case-insensitive substring match over the
// loaded records, in record order, capped at MaxSuggestions (5). A blank or
// whitespace-only term yields nothing.
//
// Loader.Lookup is the exact search. It lowercases the name and asks the
// service directly, so it finds entries outside the loaded generation. Any
// non-2xx answer becomes ErrLookupNotFound; a transport failure is returned
// wrapped so callers can tell the two apart. A blank name is ErrBlankQuery.
//
// # Testing
//
// Loader depends only on pokeapi.Fetcher, so tests drive it with an
// in-memory fetcher that can delay, fail, or count individual requests.
package catalog
