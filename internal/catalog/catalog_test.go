package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/five82/dexter/internal/pokeapi"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeFetcher serves a synthetic roster. Detail refs are the entry names.
type fakeFetcher struct {
	mu        sync.Mutex
	roster    []pokeapi.RosterEntry
	details   map[string]pokeapi.Pokemon
	rosterErr error
	failOn    string
	delay     func(ref string) time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	windows     [][2]int
}

func (f *fakeFetcher) FetchRoster(_ context.Context, offset, limit int) ([]pokeapi.RosterEntry, error) {
	f.mu.Lock()
	f.windows = append(f.windows, [2]int{offset, limit})
	f.mu.Unlock()
	if f.rosterErr != nil {
		return nil, f.rosterErr
	}
	return f.roster, nil
}

func (f *fakeFetcher) FetchPokemon(ctx context.Context, ref string) (pokeapi.Pokemon, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if f.delay != nil {
		select {
		case <-time.After(f.delay(ref)):
		case <-ctx.Done():
			return pokeapi.Pokemon{}, ctx.Err()
		}
	}
	if ref == f.failOn {
		return pokeapi.Pokemon{}, &pokeapi.StatusError{URL: ref, Code: 500}
	}
	p, ok := f.details[ref]
	if !ok {
		return pokeapi.Pokemon{}, &pokeapi.StatusError{URL: ref, Code: 404}
	}
	return p, nil
}

func mon(id int, name string, types ...string) pokeapi.Pokemon {
	p := pokeapi.Pokemon{ID: id, Name: name, Height: id, Weight: id * 10}
	for i, t := range types {
		p.Types = append(p.Types, pokeapi.TypeSlot{Slot: i + 1, Type: pokeapi.NamedAPIRef{Name: t}})
	}
	return p
}

func newFake(mons ...pokeapi.Pokemon) *fakeFetcher {
	f := &fakeFetcher{details: make(map[string]pokeapi.Pokemon)}
	for _, p := range mons {
		f.roster = append(f.roster, pokeapi.RosterEntry{Name: p.Name})
		f.details[p.Name] = p
	}
	return f
}

func TestGenerations_WindowsAreContiguous(t *testing.T) {
	gens := Generations()
	require.Len(t, gens, 9)
	assert.Equal(t, DefaultGeneration(), gens[0])
	assert.Equal(t, 151, gens[0].Count())
	assert.Equal(t, 0, gens[0].Offset())
	for i := 1; i < len(gens); i++ {
		assert.Equal(t, gens[i-1].End+1, gens[i].Start, "gap before gen %d", gens[i].Number)
		assert.Equal(t, i+1, gens[i].Number)
	}

	g, err := GenerationByNumber(2)
	require.NoError(t, err)
	assert.Equal(t, 100, g.Count())
	assert.Equal(t, 151, g.Offset())
	assert.Equal(t, "II", g.Roman())

	_, err = GenerationByNumber(0)
	assert.Error(t, err)
	_, err = GenerationByNumber(10)
	assert.Error(t, err)

	assert.Equal(t, 1, gens[8].Next().Number)
	assert.Equal(t, 9, gens[0].Prev().Number)
	assert.Equal(t, 3, gens[1].Next().Number)
}

func TestGroupByCategory_FirstEncounterOrder(t *testing.T) {
	records := []Record{
		{Name: "squirtle", Categories: []string{"water"}},
		{Name: "charmander", Categories: []string{"fire"}},
	}
	g := GroupByCategory(records)
	assert.Equal(t, []string{"water", "fire"}, g.Categories())
}

func TestGroupByCategory_MultiCategoryRecordAppearsInEachGroup(t *testing.T) {
	charizard := Record{ID: 6, Name: "charizard", Categories: []string{"fire", "flying"}}
	records := []Record{
		{ID: 4, Name: "charmander", Categories: []string{"fire"}},
		charizard,
		{ID: 16, Name: "pidgey", Categories: []string{"normal", "flying"}},
	}
	g := GroupByCategory(records)

	assert.Equal(t, []string{"fire", "flying", "normal"}, g.Categories())
	assert.Contains(t, g.Records("fire"), charizard)
	assert.Contains(t, g.Records("flying"), charizard)
	assert.Equal(t, 5, g.Placements())

	want := []Group{
		{Category: "fire", Records: []Record{records[0], charizard}},
		{Category: "flying", Records: []Record{charizard, records[2]}},
		{Category: "normal", Records: []Record{records[2]}},
	}
	if diff := cmp.Diff(want, g.Groups()); diff != "" {
		t.Fatalf("Groups() mismatch (-want +got):\n%s", diff)
	}
}

func TestGrouping_CloneIsIndependent(t *testing.T) {
	g := GroupByCategory([]Record{{Name: "a", Categories: []string{"x"}}})
	dup := g.Clone()
	recs := dup.Records("x")
	recs[0].Name = "changed"
	assert.Equal(t, "a", g.Records("x")[0].Name)
	assert.Equal(t, 0, Grouping{}.Clone().Len())
	assert.Nil(t, Grouping{}.Records("x"))
}

func TestSuggest(t *testing.T) {
	corpus := []Record{
		{Name: "charmander"}, {Name: "charmeleon"}, {Name: "charizard"}, {Name: "squirtle"},
	}

	got := Suggest("char", corpus)
	require.Len(t, got, 3)
	assert.Equal(t, "charmander", got[0].Name)
	assert.Equal(t, "charmeleon", got[1].Name)
	assert.Equal(t, "charizard", got[2].Name)

	assert.Empty(t, Suggest("", corpus))
	assert.Empty(t, Suggest("   ", corpus))
	assert.Len(t, Suggest("CHAR", corpus), 3)
	assert.Equal(t, "squirtle", Suggest("irt", corpus)[0].Name)
}

func TestSuggest_CapsAtFive(t *testing.T) {
	var corpus []Record
	for i := 0; i < 8; i++ {
		corpus = append(corpus, Record{Name: fmt.Sprintf("unown-%d", i)})
	}
	got := Suggest("unown", corpus)
	require.Len(t, got, MaxSuggestions)
	assert.Equal(t, "unown-0", got[0].Name)
	assert.Equal(t, "unown-4", got[4].Name)
}

func TestLoader_LoadPreservesRosterOrderAndGroups(t *testing.T) {
	f := newFake(
		mon(1, "bulbasaur", "grass", "poison"),
		mon(2, "ivysaur", "grass", "poison"),
		mon(4, "charmander", "fire"),
		mon(6, "charizard", "fire", "flying"),
	)
	// Earlier entries finish last.
	f.delay = func(ref string) time.Duration {
		switch ref {
		case "bulbasaur":
			return 30 * time.Millisecond
		case "ivysaur":
			return 20 * time.Millisecond
		}
		return 0
	}
	gen := Generation{Number: 1, Name: "Test", Start: 1, End: 4}

	cat, err := NewLoader(f).Load(context.Background(), gen)
	require.NoError(t, err)

	require.Len(t, cat.Records, gen.Count())
	names := make([]string, len(cat.Records))
	for i, r := range cat.Records {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"bulbasaur", "ivysaur", "charmander", "charizard"}, names)
	assert.Equal(t, []string{"grass", "poison", "fire", "flying"}, cat.Groups.Categories())

	for _, rec := range cat.Records {
		for _, label := range rec.Categories {
			assert.Contains(t, cat.Groups.Records(label), rec, "%s missing from %s", rec.Name, label)
		}
	}
	assert.Equal(t, [][2]int{{0, 4}}, f.windows)
	assert.False(t, cat.LoadedAt.IsZero())
	assert.Greater(t, f.maxInFlight.Load(), int32(1), "detail requests should overlap")
}

func TestLoader_RosterFailureFailsLoad(t *testing.T) {
	f := newFake(mon(1, "bulbasaur", "grass"))
	f.rosterErr = errors.New("connection refused")

	_, err := NewLoader(f).Load(context.Background(), DefaultGeneration())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRosterFetch)
	assert.NotErrorIs(t, err, ErrDetailFetch)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 1, loadErr.Generation.Number)
}

func TestLoader_AnyDetailFailureFailsWholeLoad(t *testing.T) {
	f := newFake(
		mon(1, "bulbasaur", "grass"),
		mon(2, "ivysaur", "grass"),
		mon(3, "venusaur", "grass"),
	)
	f.failOn = "ivysaur"
	f.delay = func(ref string) time.Duration {
		if ref == "venusaur" {
			return time.Second
		}
		return 0
	}

	start := time.Now()
	cat, err := NewLoader(f).Load(context.Background(), Generation{Number: 1, Start: 1, End: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDetailFetch)
	assert.Empty(t, cat.Records)
	assert.Equal(t, 0, cat.Groups.Len())
	assert.Less(t, time.Since(start), 900*time.Millisecond, "siblings should be cancelled")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "ivysaur", loadErr.Entry)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLoader_MaxInFlightBoundsFanOut(t *testing.T) {
	var mons []pokeapi.Pokemon
	for i := 1; i <= 12; i++ {
		mons = append(mons, mon(i, fmt.Sprintf("mon-%d", i), "normal"))
	}
	f := newFake(mons...)
	f.delay = func(string) time.Duration { return 5 * time.Millisecond }

	cat, err := NewLoader(f, WithMaxInFlight(3)).Load(context.Background(), Generation{Number: 1, Start: 1, End: 12})
	require.NoError(t, err)
	assert.Len(t, cat.Records, 12)
	assert.LessOrEqual(t, f.maxInFlight.Load(), int32(3))
}

func TestLoader_ReportsProgress(t *testing.T) {
	var mons []pokeapi.Pokemon
	for i := 1; i <= 8; i++ {
		mons = append(mons, mon(i, fmt.Sprintf("mon-%d", i), "normal"))
	}
	f := newFake(mons...)

	var (
		mu    sync.Mutex
		seen  []int
		total int
	)
	l := NewLoader(f, WithProgress(func(done, n int) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, done)
		total = n
	}))

	_, err := l.Load(context.Background(), Generation{Number: 1, Start: 1, End: 8})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 8, total)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, seen)
}

func TestLoader_LookupExactName(t *testing.T) {
	f := newFake(mon(25, "pikachu", "electric"))
	l := NewLoader(f)

	rec, err := l.Lookup(context.Background(), "  Pikachu ")
	require.NoError(t, err)
	assert.Equal(t, 25, rec.ID)
	assert.Equal(t, []string{"electric"}, rec.Categories)

	_, err = l.Lookup(context.Background(), "missingno")
	assert.ErrorIs(t, err, ErrLookupNotFound)

	_, err = l.Lookup(context.Background(), " ")
	assert.ErrorIs(t, err, ErrBlankQuery)
}

func TestRecordUnits(t *testing.T) {
	r := RecordFromPokemon(pokeapi.Pokemon{ID: 6, Name: " charizard ", Height: 17, Weight: 905})
	assert.Equal(t, "charizard", r.Name)
	assert.InDelta(t, 1.7, r.HeightMeters(), 0.001)
	assert.InDelta(t, 90.5, r.WeightKilograms(), 0.001)
	assert.False(t, r.HasCategory("fire"))
}

func TestLoader_WithLeavesReceiverUntouched(t *testing.T) {
	base := NewLoader(newFake(), WithMaxInFlight(2))
	derived := base.With(WithMaxInFlight(7), WithProgress(func(int, int) {}))

	assert.Equal(t, 2, base.maxInFlight)
	assert.Nil(t, base.progress)
	assert.Equal(t, 7, derived.maxInFlight)
	assert.NotNil(t, derived.progress)
}
