package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/dexter/internal/pokeapi"
)

// Loader fetches a generation's roster and detail records.
type Loader struct {
	source      pokeapi.Fetcher
	logger      *zap.Logger
	maxInFlight int
	progress    func(done, total int)
	now         func() time.Time
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithLogger attaches a logger. The default discards output.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMaxInFlight caps concurrent detail requests. Zero or less leaves the
// fan-out unbounded.
func WithMaxInFlight(n int) LoaderOption {
	return func(l *Loader) {
		l.maxInFlight = n
	}
}

// WithProgress registers fn to be called after each detail record arrives.
// fn runs on fan-out goroutines and must be safe for concurrent use.
func WithProgress(fn func(done, total int)) LoaderOption {
	return func(l *Loader) {
		l.progress = fn
	}
}

// NewLoader builds a Loader over source.
func NewLoader(source pokeapi.Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{
		source: source,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// With returns a copy of l with opts applied on top of its settings.
func (l *Loader) With(opts ...LoaderOption) *Loader {
	dup := *l
	for _, opt := range opts {
		opt(&dup)
	}
	return &dup
}

// Load requests the roster window for gen, fetches every entry's detail
// concurrently, and returns the flat list in roster order with its grouping.
// Any failed request fails the whole load; no partial catalog is returned.
func (l *Loader) Load(ctx context.Context, gen Generation) (Catalog, error) {
	started := l.now()

	roster, err := l.source.FetchRoster(ctx, gen.Offset(), gen.Count())
	if err != nil {
		return Catalog{}, &LoadError{Generation: gen, Kind: ErrRosterFetch, Err: err}
	}
	if len(roster) != gen.Count() {
		l.logger.Warn("roster window size mismatch",
			zap.Int("generation", gen.Number),
			zap.Int("want", gen.Count()),
			zap.Int("got", len(roster)))
	}

	records := make([]Record, len(roster))
	var done atomic.Int64
	eg, egCtx := errgroup.WithContext(ctx)
	if l.maxInFlight > 0 {
		eg.SetLimit(l.maxInFlight)
	}
	for i, entry := range roster {
		eg.Go(func() error {
			ref := entry.URL
			if strings.TrimSpace(ref) == "" {
				ref = entry.Name
			}
			p, err := l.source.FetchPokemon(egCtx, ref)
			if err != nil {
				return &LoadError{Generation: gen, Kind: ErrDetailFetch, Entry: entry.Name, Err: err}
			}
			rec := RecordFromPokemon(p)
			if rec.ID == 0 {
				rec.ID = entry.ID()
			}
			if rec.Name == "" {
				rec.Name = entry.Name
			}
			records[i] = rec
			if l.progress != nil {
				l.progress(int(done.Add(1)), len(roster))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Catalog{}, err
	}

	l.logger.Debug("generation loaded",
		zap.Int("generation", gen.Number),
		zap.Int("records", len(records)),
		zap.Duration("elapsed", l.now().Sub(started)))

	return Catalog{
		Generation: gen,
		Records:    records,
		Groups:     GroupByCategory(records),
		LoadedAt:   l.now(),
	}, nil
}

// Lookup fetches a single record by exact name from the remote service,
// regardless of which generation is loaded. Any non-2xx answer is reported as
// ErrLookupNotFound.
func (l *Loader) Lookup(ctx context.Context, name string) (Record, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return Record{}, ErrBlankQuery
	}
	p, err := l.source.FetchPokemon(ctx, query)
	if err != nil {
		var statusErr *pokeapi.StatusError
		if errors.As(err, &statusErr) {
			return Record{}, fmt.Errorf("lookup %q: %w", query, ErrLookupNotFound)
		}
		return Record{}, fmt.Errorf("lookup %q: %w", query, err)
	}
	rec := RecordFromPokemon(p)
	if rec.Name == "" {
		rec.Name = query
	}
	return rec, nil
}
