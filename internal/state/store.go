package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/dexter/internal/catalog"
)

// Phase is the controller's load state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrSuperseded is returned by Load and SubmitSearch when a newer selection
// replaced the request.
var ErrSuperseded = errors.New("superseded by a newer selection")

// Catalog is the subset of the loader the controller drives.
type Catalog interface {
	Load(ctx context.Context, gen catalog.Generation) (catalog.Catalog, error)
	Lookup(ctx context.Context, name string) (catalog.Record, error)
}

// Snapshot is the complete view state. Records and Groups always come from the
// same completed load.
type Snapshot struct {
	Phase      Phase
	Generation catalog.Generation
	Records    []catalog.Record
	Groups     catalog.Grouping
	LoadedAt   time.Time
	LoadID     string
	LastError  error

	Term        string
	Suggestions []catalog.Record

	Selected    *catalog.Record
	OverlayOpen bool

	// Notice is a user-visible message from the last exact lookup.
	Notice string
}

// LoadRequest identifies one generation selection.
type LoadRequest struct {
	Generation catalog.Generation
	Token      uint64
	ID         string
}

// Controller owns the view state and serializes every transition.
type Controller struct {
	catalog Catalog
	logger  *zap.Logger

	mu       sync.Mutex
	snapshot Snapshot
	token    uint64
	cancel   context.CancelFunc

	// lookup is bumped by every selection and every submitted lookup; a
	// lookup applies its result only if it is still the latest.
	lookup uint64
}

// NewController returns a controller in Loading(initial). The caller starts
// the first load with Load(ctx, controller.Pending()).
func NewController(c Catalog, initial catalog.Generation, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctl := &Controller{catalog: c, logger: logger}
	ctl.SelectGeneration(initial)
	return ctl
}

// SelectGeneration moves to Loading(gen) from any state. It supersedes any
// in-flight load and clears the corpus and suggestions.
func (c *Controller) SelectGeneration(gen catalog.Generation) LoadRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.token++
	req := LoadRequest{Generation: gen, Token: c.token, ID: uuid.NewString()}

	c.snapshot.Phase = PhaseLoading
	c.snapshot.Generation = gen
	c.snapshot.Records = nil
	c.snapshot.Groups = catalog.Grouping{}
	c.snapshot.LoadedAt = time.Time{}
	c.snapshot.LoadID = req.ID
	c.snapshot.LastError = nil
	c.snapshot.Suggestions = nil
	return req
}

// Pending returns the request for the current selection.
func (c *Controller) Pending() LoadRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return LoadRequest{Generation: c.snapshot.Generation, Token: c.token, ID: c.snapshot.LoadID}
}

// Load runs req against the catalog and applies the result if req is still
// current. Superseded loads return ErrSuperseded and leave state untouched.
func (c *Controller) Load(ctx context.Context, req LoadRequest) error {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if req.Token != c.token {
		c.mu.Unlock()
		return ErrSuperseded
	}
	c.cancel = cancel
	c.mu.Unlock()

	log := c.logger.With(
		zap.String("load_id", req.ID),
		zap.Int("generation", req.Generation.Number))
	started := time.Now()
	log.Info("loading generation", zap.Int("entries", req.Generation.Count()))

	result, err := c.catalog.Load(loadCtx, req.Generation)

	c.mu.Lock()
	defer c.mu.Unlock()

	if req.Token != c.token {
		log.Warn("discarding superseded load", zap.Duration("elapsed", time.Since(started)))
		return ErrSuperseded
	}
	c.cancel = nil

	if err != nil {
		log.Warn("generation load failed", zap.Error(err))
		c.snapshot.Phase = PhaseError
		c.snapshot.Records = nil
		c.snapshot.Groups = catalog.Grouping{}
		c.snapshot.Suggestions = nil
		c.snapshot.LastError = err
		return err
	}

	c.snapshot.Phase = PhaseLoaded
	c.snapshot.Records = catalog.CloneRecords(result.Records)
	c.snapshot.Groups = result.Groups.Clone()
	c.snapshot.LoadedAt = result.LoadedAt
	c.snapshot.LastError = nil
	log.Info("generation loaded",
		zap.Int("records", len(result.Records)),
		zap.Int("categories", result.Groups.Len()),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// TypeSearch updates the term and recomputes suggestions against the loaded
// corpus. Outside Loaded there is no corpus, so suggestions stay empty.
func (c *Controller) TypeSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot.Term = text
	if c.snapshot.Phase != PhaseLoaded {
		c.snapshot.Suggestions = nil
		return
	}
	c.snapshot.Suggestions = catalog.Suggest(text, c.snapshot.Records)
}

// PickSuggestion selects rec, opens the overlay, and fills the term with its name.
func (c *Controller) PickSuggestion(rec catalog.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot.Term = rec.Name
	c.open(rec)
}

// ClickCard selects rec and opens the overlay.
func (c *Controller) ClickCard(rec catalog.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open(rec)
}

func (c *Controller) open(rec catalog.Record) {
	sel := rec
	sel.Categories = append([]string(nil), rec.Categories...)
	c.lookup++
	c.snapshot.Selected = &sel
	c.snapshot.OverlayOpen = true
	c.snapshot.Suggestions = nil
	c.snapshot.Notice = ""
}

// SubmitSearch looks the current term up on the remote service by exact
// name. A blank term is a no-op. On failure only Notice changes. If another
// selection or lookup happened while the request was out, the result is
// dropped and ErrSuperseded is returned.
func (c *Controller) SubmitSearch(ctx context.Context) error {
	c.mu.Lock()
	term := strings.TrimSpace(c.snapshot.Term)
	if term == "" {
		c.mu.Unlock()
		return nil
	}
	c.lookup++
	token := c.lookup
	c.mu.Unlock()

	rec, err := c.catalog.Lookup(ctx, term)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.lookup {
		c.logger.Debug("discarding superseded lookup", zap.String("term", term))
		return ErrSuperseded
	}

	if err != nil {
		c.logger.Info("exact lookup failed", zap.String("term", term), zap.Error(err))
		if errors.Is(err, catalog.ErrLookupNotFound) {
			c.snapshot.Notice = fmt.Sprintf("No creature named %q", term)
		} else {
			c.snapshot.Notice = fmt.Sprintf("Lookup failed: %v", err)
		}
		return err
	}
	c.open(rec)
	return nil
}

// DismissOverlay closes the overlay. The selection is kept.
func (c *Controller) DismissOverlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot.OverlayOpen = false
}

// DismissSuggestions clears suggestions only. The host raises it for any
// gesture outside the search box.
func (c *Controller) DismissSuggestions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot.Suggestions = nil
}

// ClearNotice drops the lookup notice.
func (c *Controller) ClearNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot.Notice = ""
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snapshot
	snap.Records = catalog.CloneRecords(c.snapshot.Records)
	snap.Groups = c.snapshot.Groups.Clone()
	snap.Suggestions = catalog.CloneRecords(c.snapshot.Suggestions)
	if c.snapshot.Selected != nil {
		sel := *c.snapshot.Selected
		snap.Selected = &sel
	}
	return snap
}

// Close cancels any in-flight load.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
