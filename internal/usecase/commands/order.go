package commands

import (
	"context"

	"arttoy-storefront/internal/domain/order"
	"arttoy-storefront/internal/pkg/errs"
	"arttoy-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrToyNotFound   = errs.New("toy not found")
	ErrOrderNotFound = errs.New("order not found")
	ErrQuotaExceeded = errs.New("quota exceeded")
	ErrNotOrderable  = errs.New("toy is out of quota")
	ErrUpstreamWrite = errs.New("upstream write failed")
)

// OrderWriter performs order mutations against the backend ledger.
// Implemented by the upstream client.
type OrderWriter interface {
	CreateOrder(ctx context.Context, token string, toyID uuid.UUID, quantity int) (*queries.OrderView, error)
	UpdateOrder(ctx context.Context, token string, id uuid.UUID, quantity int) (*queries.OrderView, error)
	DeleteOrder(ctx context.Context, token string, id uuid.UUID) error
}

type PreviewParams struct {
	ToyID    uuid.UUID
	Quantity int
	Delta    int
}

type AdmissionResult struct {
	Quantity       int
	AvailableQuota int
	CanSubmit      bool
}

type PlaceOrderParams struct {
	ToyID    uuid.UUID
	Quantity int
}

type OrderCommands interface {
	// Preview clamps a stepper move against the freshest snapshot and
	// reports whether a submit would currently be admitted. Pure local
	// computation apart from the snapshot refresh.
	Preview(ctx context.Context, params PreviewParams) (*AdmissionResult, error)
	// Place admits the quantity against the freshest snapshot and only then
	// submits upstream. A local quota failure never reaches the network:
	// the caller gets an immediate, deterministic quota-exceeded condition
	// instead of a wasted round trip.
	Place(ctx context.Context, token string, params PlaceOrderParams) (*queries.OrderView, error)
	// Amend revalidates the new quantity the same way Place does; the
	// backend revalidates again against its own counters.
	Amend(ctx context.Context, token string, id uuid.UUID, quantity int) (*queries.OrderView, error)
	Cancel(ctx context.Context, token string, id uuid.UUID) error
}

type orderCommandsImpl struct {
	writer  OrderWriter
	catalog queries.CatalogQueries
}

func NewOrderCommands(writer OrderWriter, catalog queries.CatalogQueries) OrderCommands {
	return &orderCommandsImpl{
		writer:  writer,
		catalog: catalog,
	}
}

func (c *orderCommandsImpl) Preview(ctx context.Context, params PreviewParams) (*AdmissionResult, error) {
	toy, err := c.freshToy(ctx, params.ToyID)
	if err != nil {
		return nil, err
	}

	draft := order.ResumeDraft(params.ToyID, params.Quantity).Step(params.Delta, toy.AvailableQuota)

	return &AdmissionResult{
		Quantity:       draft.Quantity(),
		AvailableQuota: toy.AvailableQuota,
		CanSubmit:      order.CanSubmit(draft.Quantity(), toy.AvailableQuota),
	}, nil
}

func (c *orderCommandsImpl) Place(ctx context.Context, token string, params PlaceOrderParams) (*queries.OrderView, error) {
	if err := c.admit(ctx, params.ToyID, params.Quantity); err != nil {
		return nil, err
	}

	created, err := c.writer.CreateOrder(ctx, token, params.ToyID, params.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamWrite)
	}

	// The backend decremented its counter; our snapshot now lies.
	c.catalog.Invalidate()
	return created, nil
}

func (c *orderCommandsImpl) Amend(ctx context.Context, token string, id uuid.UUID, quantity int) (*queries.OrderView, error) {
	// The toy behind the order is not known locally; the quantity bounds
	// that are checkable here are the floor and the policy ceiling. The
	// backend holds the authoritative quota check either way.
	if quantity < 1 || quantity > order.PolicyCeiling {
		return nil, ErrQuotaExceeded
	}

	updated, err := c.writer.UpdateOrder(ctx, token, id, quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamWrite)
	}

	c.catalog.Invalidate()
	return updated, nil
}

func (c *orderCommandsImpl) Cancel(ctx context.Context, token string, id uuid.UUID) error {
	if err := c.writer.DeleteOrder(ctx, token, id); err != nil {
		return errs.Mark(err, ErrUpstreamWrite)
	}

	c.catalog.Invalidate()
	return nil
}

// admit re-validates immediately before submission using the freshest
// available snapshot; time has passed since the dialog opened and the
// ledger may have moved.
func (c *orderCommandsImpl) admit(ctx context.Context, toyID uuid.UUID, quantity int) error {
	toy, err := c.freshToy(ctx, toyID)
	if err != nil {
		return err
	}
	if toy.AvailableQuota < 1 {
		return ErrNotOrderable
	}
	if quantity > order.PolicyCeiling || !order.CanSubmit(quantity, toy.AvailableQuota) {
		return ErrQuotaExceeded
	}
	return nil
}

func (c *orderCommandsImpl) freshToy(ctx context.Context, toyID uuid.UUID) (*queries.ToyView, error) {
	toy, err := c.catalog.FreshToy(ctx, toyID)
	if err != nil {
		if errs.Is(err, queries.ErrToyNotFound) {
			return nil, ErrToyNotFound
		}
		return nil, err
	}
	return toy, nil
}
