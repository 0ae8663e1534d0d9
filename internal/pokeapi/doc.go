// Package pokeapi provides an HTTP client for the PokeAPI REST service.
//
// # Overview
//
// The client reads two endpoints:
//
//   - GET <base>/pokemon?limit=N&offset=M: a roster window of name + URL pairs
//   - GET <base>/pokemon/{name-or-id}: the full detail record for one entry
//
// Roster entries carry absolute detail URLs; FetchPokemon accepts either
// such a URL or a bare name or id, so the same call serves the catalog
// fan-out and the exact-name lookup.
//
// # Base URL
//
// NewClient normalizes the configured base before any request is made:
//
//	""                       → https://pokeapi.co/api/v2/
//	"example.com:1234/api"   → https://example.com:1234/api/
//	"http://host/x?y=1#z"    → http://host/x/
//
// A missing scheme defaults to https, query and fragment are dropped, and a
// trailing slash is added so relative endpoint paths resolve beneath it.
//
// # Payloads
//
// Only the fields dexter reads are decoded:
//
//	Pokemon {
//	    id, name
//	    height   decimetres
//	    weight   hectograms
//	    sprites  { front_default }
//	    types    [ { slot, type { name } } ]
//	}
//
// Pokemon.TypeNames returns the type labels in the order the payload lists
// them, dropping blank names. The slot number is decoded but not used for
// ordering. RosterEntry.ID parses the id from the trailing segment of the
// detail URL and returns 0 when there is none.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: dexter/0.1
//   - Are bounded by the client timeout (10 seconds unless configured)
//
// A name reference is trimmed and lowercased before it becomes a path
// segment. A blank reference is rejected without touching the network.
//
// # Error Handling
//
// Non-2xx responses return *StatusError carrying the request URL and status
// code. A 404 also satisfies errors.Is(err, ErrNotFound):
//
//	var se *pokeapi.StatusError
//	switch {
//	case errors.Is(err, pokeapi.ErrNotFound):  // unknown name or id
//	case errors.As(err, &se):                  // any other status
//	default:                                   // transport or decode failure
//	}
//
// Transport failures are wrapped with "execute request:" and malformed
// payloads with "decode response:".
//
// The client does not retry and does not cache; callers decide what a
// failure means.
//
// # Thread Safety
//
// Client is safe for concurrent use; the loader issues one FetchPokemon per
// roster entry in parallel. The Fetcher interface lets tests substitute an
// in-memory source.
package pokeapi
