package upstream

import (
	"context"
	"net/http"
	"time"

	"arttoy-storefront/internal/domain/catalog"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type toyPayload struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	AvailableQuota int       `json:"availableQuota"`
	Description    string    `json:"description"`
	PosterPicture  string    `json:"posterPicture"`
	ArrivalDate    time.Time `json:"arrivalDate"`
}

type toyWriteBody struct {
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	AvailableQuota int       `json:"availableQuota"`
	Description    string    `json:"description"`
	PosterPicture  string    `json:"posterPicture"`
	ArrivalDate    time.Time `json:"arrivalDate"`
}

// FetchToys implements queries.CatalogSource: the criteria picks exactly one
// of the three retrieval routes.
func (c *Client) FetchToys(ctx context.Context, criteria catalog.SearchCriteria) ([]*queries.ToyView, error) {
	var payload []toyPayload
	if err := c.do(ctx, http.MethodGet, criteria.UpstreamPath(), "", nil, &payload); err != nil {
		return nil, err
	}

	toys := make([]*queries.ToyView, len(payload))
	for i, p := range payload {
		toys[i] = toToyView(p)
	}
	return toys, nil
}

// CreateToy implements commands.CatalogWriter.
func (c *Client) CreateToy(ctx context.Context, token string, params commands.ToyParams) (*queries.ToyView, error) {
	var payload toyPayload
	if err := c.do(ctx, http.MethodPost, "/catalog", token, toWriteBody(params), &payload); err != nil {
		return nil, err
	}
	return toToyView(payload), nil
}

func (c *Client) UpdateToy(ctx context.Context, token string, id uuid.UUID, params commands.ToyParams) (*queries.ToyView, error) {
	var payload toyPayload
	if err := c.do(ctx, http.MethodPut, "/catalog/"+id.String(), token, toWriteBody(params), &payload); err != nil {
		return nil, err
	}
	return toToyView(payload), nil
}

func (c *Client) DeleteToy(ctx context.Context, token string, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/catalog/"+id.String(), token, nil, nil)
}

func toToyView(p toyPayload) *queries.ToyView {
	return &queries.ToyView{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		AvailableQuota: p.AvailableQuota,
		Description:    p.Description,
		PosterPicture:  p.PosterPicture,
		ArrivalDate:    p.ArrivalDate,
	}
}

func toWriteBody(params commands.ToyParams) toyWriteBody {
	return toyWriteBody{
		Name:           params.Name,
		SKU:            params.SKU,
		AvailableQuota: params.AvailableQuota,
		Description:    params.Description,
		PosterPicture:  params.PosterPicture,
		ArrivalDate:    params.ArrivalDate,
	}
}
