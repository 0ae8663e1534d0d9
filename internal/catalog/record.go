package catalog

import (
	"strings"
	"time"

	"github.com/five82/dexter/internal/pokeapi"
)

// Record is the detail record for one catalog entry. Records are not
// mutated after they are built.
type Record struct {
	ID         int
	Name       string
	SpriteURL  string
	Height     int // decimetres
	Weight     int // hectograms
	Categories []string
}

// Catalog is the result of one completed load: the flat list in roster
// order and the grouping derived from it.
type Catalog struct {
	Generation Generation
	Records    []Record
	Groups     Grouping
	LoadedAt   time.Time
}

// RecordFromPokemon converts an API payload into a Record.
func RecordFromPokemon(p pokeapi.Pokemon) Record {
	return Record{
		ID:         p.ID,
		Name:       strings.TrimSpace(p.Name),
		SpriteURL:  p.Sprites.FrontDefault,
		Height:     p.Height,
		Weight:     p.Weight,
		Categories: p.TypeNames(),
	}
}

// HasCategory reports whether the record carries label.
func (r Record) HasCategory(label string) bool {
	for _, c := range r.Categories {
		if c == label {
			return true
		}
	}
	return false
}

// HeightMeters converts the API's decimetres to metres.
func (r Record) HeightMeters() float64 {
	return float64(r.Height) / 10
}

// WeightKilograms converts the API's hectograms to kilograms.
func (r Record) WeightKilograms() float64 {
	return float64(r.Weight) / 10
}

// CloneRecords copies a record slice so callers cannot alias stored state.
func CloneRecords(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]Record, len(records))
	copy(dup, records)
	return dup
}
