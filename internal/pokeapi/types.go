package pokeapi

import (
	"strconv"
	"strings"
)

// RosterResponse mirrors the paginated /pokemon listing.
type RosterResponse struct {
	Count    int           `json:"count"`
	Next     string        `json:"next"`
	Previous string        `json:"previous"`
	Results  []RosterEntry `json:"results"`
}

// RosterEntry is one name + detail URL pair from the listing.
type RosterEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID extracts the numeric id from the trailing path segment of the detail URL.
// It returns 0 when the URL carries no id.
func (e RosterEntry) ID() int {
	trimmed := strings.TrimRight(strings.TrimSpace(e.URL), "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil {
		return 0
	}
	return id
}

// Pokemon mirrors the subset of /pokemon/{name} that dexter reads.
type Pokemon struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Height  int        `json:"height"` // decimetres
	Weight  int        `json:"weight"` // hectograms
	Sprites Sprites    `json:"sprites"`
	Types   []TypeSlot `json:"types"`
}

// Sprites holds the image URLs for a record.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// TypeSlot is one entry of the types array.
type TypeSlot struct {
	Slot int         `json:"slot"`
	Type NamedAPIRef `json:"type"`
}

// NamedAPIRef is the service's generic {name, url} reference.
type NamedAPIRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TypeNames returns the type labels in payload order, skipping blank names.
// Grouping relies on this order, so it is not re-sorted by slot.
func (p Pokemon) TypeNames() []string {
	if len(p.Types) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.Types))
	for _, s := range p.Types {
		if name := strings.TrimSpace(s.Type.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
