package browse

import (
	"context"
	"sync"

	"github.com/barcart/barcart/internal/metrics"
)

// State is the controller's fetch lifecycle state.
type State int

const (
	StateLoading State = iota // fetch in flight for the current view
	StateIdle                 // showing the committed result for the current view
	StateError                // latest fetch for the current view failed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateError:
		return "error"
	default:
		return "loading"
	}
}

// Controller owns one live view: the current ViewQuery, the most recently
// committed PageResult, and the generation counter that decides which fetch
// result is allowed to commit. Every user action derives a new view, bumps
// the generation, and launches a fetch; a settled fetch commits only if its
// generation is still current. Overlapping fetches therefore cannot clobber
// a newer view with a stale response, whatever order they settle in.
//
// There is no true cancellation: a superseded fetch completes normally and
// its result is dropped. Fetches are cheap idempotent reads, so discarding
// is all the cancellation this needs.
type Controller struct {
	fetcher Fetcher
	ctx     context.Context

	mu      sync.Mutex
	query   ViewQuery
	state   State
	gen     uint64
	result  *PageResult // last committed; survives later failures
	lastErr error

	inflight sync.WaitGroup
}

// Snapshot is a consistent copy of the controller's presentation state.
type Snapshot struct {
	State  State
	Query  ViewQuery
	Result *PageResult // nil until the first successful commit
	Err    error       // non-nil only in StateError
}

// NewController starts a controller on the initial view (the default listing,
// or whatever an incoming URL decoded to) and issues its first fetch.
func NewController(ctx context.Context, fetcher Fetcher, initial ViewQuery) *Controller {
	c := &Controller{fetcher: fetcher, ctx: ctx}
	c.mu.Lock()
	c.dispatchLocked(initial)
	c.mu.Unlock()
	return c
}

// SearchSubmit applies a submitted search term. An empty (or all-space) term
// restores the default listing rather than the last active filter.
func (c *Controller) SearchSubmit(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchLocked(c.query.WithSearch(text))
}

// SelectLetter switches to a first-letter view. Validation happens at fetch
// time; a bad letter settles as an error for this generation.
func (c *Controller) SelectLetter(letter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchLocked(c.query.WithLetter(letter))
}

// SelectCategory switches to a category view; empty restores the default
// listing.
func (c *Controller) SelectCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchLocked(c.query.WithCategory(category))
}

// NextPage advances one page. It is a no-op unless the committed result says
// more pages exist, so it can never run past the end.
func (c *Controller) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil || !c.result.HasMore {
		return
	}
	c.dispatchLocked(c.query.Next())
}

// PrevPage moves back one page. It is a no-op on the first page.
func (c *Controller) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Index <= 0 {
		return
	}
	c.dispatchLocked(c.query.Prev())
}

// Snapshot returns the current presentation state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, Query: c.query, Result: c.result, Err: c.lastErr}
}

// Wait blocks until every fetch launched so far has settled. Superseded
// fetches count: they still settle, they just don't commit.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// dispatchLocked installs q as the current view, bumps the generation, and
// launches the fetch. Callers hold c.mu.
func (c *Controller) dispatchLocked(q ViewQuery) {
	c.gen++
	gen := c.gen
	c.query = q
	c.state = StateLoading
	c.lastErr = nil

	c.inflight.Add(1)
	go func() {
		res, err := c.fetcher.Resolve(c.ctx, q)
		c.settle(gen, res, err)
		c.inflight.Done()
	}()
}

// settle admits or discards one fetch outcome. Results for superseded
// generations are dropped without touching any state; that silent discard is
// the whole ordering mechanism.
func (c *Controller) settle(gen uint64, res *PageResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		metrics.StaleResultsDiscardedTotal.Inc()
		return
	}

	if err != nil {
		// Keep the previous committed page for display; stale-but-valid
		// beats blank.
		c.state = StateError
		c.lastErr = err
		return
	}

	res.Generation = gen
	c.result = res
	c.state = StateIdle
}
