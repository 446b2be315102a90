package queries

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"arttoy-storefront/internal/domain/catalog"
	"arttoy-storefront/internal/pkg/clock"
	"arttoy-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrToyNotFound = errs.New("toy not found")

// CatalogSource fetches catalog data from the backend. Implemented by the
// upstream client.
type CatalogSource interface {
	FetchToys(ctx context.Context, criteria catalog.SearchCriteria) ([]*ToyView, error)
}

type CatalogQueries interface {
	// List serves the full catalog from the snapshot, refreshing it when
	// stale. On a failed refresh the previous successful snapshot is kept
	// and returned; stale data beats an empty list on a transient failure.
	List(ctx context.Context) ([]*ToyView, error)
	// Search routes filtered criteria straight to the backend; filtered
	// results never replace the full-catalog snapshot.
	Search(ctx context.Context, criteria catalog.SearchCriteria) ([]*ToyView, error)
	// FreshToy forces a snapshot refresh and returns the toy, so admission
	// decisions read the latest fetched quota, not a value captured when
	// the order dialog opened.
	FreshToy(ctx context.Context, id uuid.UUID) (*ToyView, error)
	// Invalidate marks the snapshot stale; the next dependent computation
	// must re-fetch. Called after every catalog- or order-mutating command.
	Invalidate()
}

type catalogQueriesImpl struct {
	source CatalogSource
	clock  clock.Clock
	ttl    time.Duration

	mu        sync.RWMutex
	snapshot  []*ToyView
	fetchedAt time.Time
	valid     bool
}

func NewCatalogQueries(source CatalogSource, clk clock.Clock, ttl time.Duration) CatalogQueries {
	return &catalogQueriesImpl{
		source: source,
		clock:  clk,
		ttl:    ttl,
	}
}

func (q *catalogQueriesImpl) List(ctx context.Context) ([]*ToyView, error) {
	if toys, ok := q.cached(); ok {
		return toys, nil
	}
	return q.refresh(ctx)
}

func (q *catalogQueriesImpl) Search(ctx context.Context, criteria catalog.SearchCriteria) ([]*ToyView, error) {
	if criteria.IsListAll() {
		return q.List(ctx)
	}
	return q.source.FetchToys(ctx, criteria)
}

func (q *catalogQueriesImpl) FreshToy(ctx context.Context, id uuid.UUID) (*ToyView, error) {
	toys, err := q.refresh(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range toys {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrToyNotFound
}

func (q *catalogQueriesImpl) Invalidate() {
	q.mu.Lock()
	q.valid = false
	q.mu.Unlock()
}

func (q *catalogQueriesImpl) cached() ([]*ToyView, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if !q.valid || q.clock.Now().Sub(q.fetchedAt) > q.ttl {
		return nil, false
	}
	return q.snapshot, true
}

// refresh replaces the whole snapshot; it never patches incrementally. On
// failure the previous successful snapshot survives untouched and is served
// if present.
func (q *catalogQueriesImpl) refresh(ctx context.Context) ([]*ToyView, error) {
	toys, err := q.source.FetchToys(ctx, catalog.ListAll())
	if err != nil {
		q.mu.RLock()
		stale := q.snapshot
		q.mu.RUnlock()
		if stale != nil {
			slog.Warn("catalog refresh failed, serving stale snapshot", "error", err.Error())
			return stale, nil
		}
		return nil, err
	}

	q.mu.Lock()
	q.snapshot = toys
	q.fetchedAt = q.clock.Now()
	q.valid = true
	q.mu.Unlock()
	return toys, nil
}
