package commands

import (
	"context"
	"time"

	"arttoy-storefront/internal/domain/catalog"
	"arttoy-storefront/internal/infra"
	"arttoy-storefront/internal/pkg/errs"
	"arttoy-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrToyReferenced = errs.New("toy has existing orders")
	ErrInvalidToy    = errs.New("invalid toy data")
)

// CatalogWriter performs catalog mutations against the backend.
// Implemented by the upstream client.
type CatalogWriter interface {
	CreateToy(ctx context.Context, token string, params ToyParams) (*queries.ToyView, error)
	UpdateToy(ctx context.Context, token string, id uuid.UUID, params ToyParams) (*queries.ToyView, error)
	DeleteToy(ctx context.Context, token string, id uuid.UUID) error
}

type ToyParams struct {
	Name           string
	SKU            string
	AvailableQuota int
	Description    string
	PosterPicture  string
	ArrivalDate    time.Time
}

type CatalogCommands interface {
	Create(ctx context.Context, token string, params ToyParams) (*queries.ToyView, error)
	Update(ctx context.Context, token string, id uuid.UUID, params ToyParams) (*queries.ToyView, error)
	// Delete runs the two-phase referential check: a fresh ledger fetch and
	// the local guard first, then the upstream delete, whose own conflict
	// answer is reported identically to a pre-check failure.
	Delete(ctx context.Context, token string, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	writer  CatalogWriter
	orders  queries.OrderQueries
	catalog queries.CatalogQueries
}

func NewCatalogCommands(writer CatalogWriter, orders queries.OrderQueries, cat queries.CatalogQueries) CatalogCommands {
	return &catalogCommandsImpl{
		writer:  writer,
		orders:  orders,
		catalog: cat,
	}
}

func (c *catalogCommandsImpl) Create(ctx context.Context, token string, params ToyParams) (*queries.ToyView, error) {
	if err := validateToyParams(params); err != nil {
		return nil, errs.Mark(err, ErrInvalidToy)
	}

	created, err := c.writer.CreateToy(ctx, token, params)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamWrite)
	}

	c.catalog.Invalidate()
	return created, nil
}

func (c *catalogCommandsImpl) Update(ctx context.Context, token string, id uuid.UUID, params ToyParams) (*queries.ToyView, error) {
	if err := validateToyParams(params); err != nil {
		return nil, errs.Mark(err, ErrInvalidToy)
	}

	updated, err := c.writer.UpdateToy(ctx, token, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrToyNotFound
		}
		return nil, errs.Mark(err, ErrUpstreamWrite)
	}

	c.catalog.Invalidate()
	return updated, nil
}

func (c *catalogCommandsImpl) Delete(ctx context.Context, token string, id uuid.UUID) error {
	refs, err := c.orders.ReferencedToyIDs(ctx, token)
	if err != nil {
		return errs.Wrap(err, "failed to fetch orders for pre-deletion check")
	}

	if !catalog.CanDelete(id, refs) {
		// Blocked locally; no delete request goes out.
		return ErrToyReferenced
	}

	if err := c.writer.DeleteToy(ctx, token, id); err != nil {
		// An order slipped in between the pre-check and the delete; the
		// backend's answer gets the same treatment as the local veto.
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrToyReferenced)
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrToyNotFound
		}
		return errs.Mark(err, ErrUpstreamWrite)
	}

	c.catalog.Invalidate()
	return nil
}

func validateToyParams(params ToyParams) error {
	_, err := catalog.NewArtToy(
		uuid.Nil,
		params.Name,
		params.SKU,
		params.AvailableQuota,
		params.Description,
		params.PosterPicture,
		params.ArrivalDate,
	)
	return err
}
