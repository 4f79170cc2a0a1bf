// Package feed implements the incremental catalog-loading state machine used
// by browsing clients: one page at a time, deduplicated by product identity,
// with a hasMore flag driven by page size and an edge-triggered advance signal.
package feed

import (
	"context"
	"sync"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
)

// Filter is the active catalog filter. Category "" or "all" means no filter;
// SortBy "" means default identity order.
type Filter struct {
	Category string
	SortBy   string
}

// Fetcher retrieves one page of products for a filter. Implementations are
// typically HTTP clients of the catalog query endpoint.
type Fetcher interface {
	FetchPage(ctx context.Context, page, pageSize int, f Filter) ([]models.Product, error)
}

// Controller accumulates catalog pages into a single deduplicated item list.
// It issues at most one fetch at a time; visibility signals arriving while a
// fetch is in flight, or after the last page, are no-ops. Every filter change
// bumps a generation counter so that a late-arriving response for the old
// filter is discarded instead of merging into the new state.
//
// All methods are safe for concurrent use.
type Controller struct {
	fetcher  Fetcher
	pageSize int

	mu      sync.Mutex
	filter  Filter
	page    int
	items   []models.Product
	seen    map[string]bool
	hasMore bool
	loading bool
	failed  bool
	lastErr error
	gen     uint64
}

// NewController creates a controller fetching pages of pageSize items.
func NewController(fetcher Fetcher, pageSize int) *Controller {
	return &Controller{
		fetcher:  fetcher,
		pageSize: pageSize,
		page:     1,
		seen:     make(map[string]bool),
	}
}

// SetFilter resets the feed to an empty first page under the new filter and
// immediately fetches page 1. Any in-flight fetch for the previous filter is
// invalidated.
func (c *Controller) SetFilter(ctx context.Context, f Filter) {
	c.mu.Lock()
	c.filter = f
	c.page = 1
	c.items = nil
	c.seen = make(map[string]bool)
	c.hasMore = false
	c.failed = false
	c.lastErr = nil
	c.loading = false
	c.gen++
	c.mu.Unlock()

	c.fetch(ctx, 1)
}

// Advance is the visibility signal: the last rendered item became visible.
// It fetches the next page only when more data is available and no fetch is
// in flight.
func (c *Controller) Advance(ctx context.Context) {
	c.mu.Lock()
	if c.loading || c.failed || !c.hasMore {
		c.mu.Unlock()
		return
	}
	next := c.page + 1
	c.mu.Unlock()

	c.fetch(ctx, next)
}

// Retry re-fetches the page that previously failed. It is a no-op unless the
// controller is in the failed state.
func (c *Controller) Retry(ctx context.Context) {
	c.mu.Lock()
	if !c.failed || c.loading {
		c.mu.Unlock()
		return
	}
	c.failed = false
	c.lastErr = nil
	page := c.page
	c.mu.Unlock()

	c.fetch(ctx, page)
}

func (c *Controller) fetch(ctx context.Context, page int) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.page = page
	gen := c.gen
	filter := c.filter
	c.mu.Unlock()

	fetched, err := c.fetcher.FetchPage(ctx, page, c.pageSize, filter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// A filter change superseded this request while it was in flight;
		// merging now would resurrect items for a stale filter.
		return
	}
	c.loading = false

	if err != nil {
		c.failed = true
		c.lastErr = err
		c.hasMore = false
		return
	}

	if page == 1 {
		c.items = nil
		c.seen = make(map[string]bool)
	}

	newUnique := 0
	for _, p := range fetched {
		if c.seen[p.ID] {
			// Overlapping pages happen when a concurrent inventory mutation
			// shifts the sort order between fetches.
			continue
		}
		c.seen[p.ID] = true
		c.items = append(c.items, p)
		newUnique++
	}

	switch {
	case len(fetched) < c.pageSize:
		c.hasMore = false
	case page > 1 && newUnique == 0:
		// A full page of duplicates: the window has drifted past known items
		// and advancing further would loop.
		c.hasMore = false
	default:
		c.hasMore = true
	}
}

// Items returns a copy of the accumulated products in arrival order.
func (c *Controller) Items() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.items))
	copy(out, c.items)
	return out
}

// HasMore reports whether another page may be available.
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Page returns the most recently requested page number.
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Filter returns the active filter.
func (c *Controller) Filter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Err returns the error of the most recent failed fetch, or nil.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
