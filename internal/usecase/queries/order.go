package queries

import (
	"context"

	"github.com/google/uuid"
)

// OrderSource fetches the order ledger from the backend on behalf of the
// given credential. Implemented by the upstream client.
type OrderSource interface {
	FetchOrders(ctx context.Context, token string) ([]*OrderView, error)
}

type OrderQueries interface {
	// List always fetches a fresh ledger view: the ledger is user-scoped
	// and feeds the deletion guard, which mandates a fetch immediately
	// before the check.
	List(ctx context.Context, token string) ([]*OrderView, error)
	// ReferencedToyIDs projects a fresh ledger onto the toy ids it
	// references, the input of the deletion guard.
	ReferencedToyIDs(ctx context.Context, token string) ([]uuid.UUID, error)
}

type orderQueriesImpl struct {
	source OrderSource
}

func NewOrderQueries(source OrderSource) OrderQueries {
	return &orderQueriesImpl{source: source}
}

func (q *orderQueriesImpl) List(ctx context.Context, token string) ([]*OrderView, error) {
	return q.source.FetchOrders(ctx, token)
}

func (q *orderQueriesImpl) ReferencedToyIDs(ctx context.Context, token string) ([]uuid.UUID, error) {
	orders, err := q.source.FetchOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	refs := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		refs[i] = o.ToyID
	}
	return refs, nil
}
