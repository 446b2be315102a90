package upstream

import (
	"context"
	"net/http"
	"time"

	"arttoy-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type orderPayload struct {
	ID   uuid.UUID `json:"id"`
	Item struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
		SKU  string    `json:"sku"`
	} `json:"item"`
	Owner struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	} `json:"owner"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type createOrderBody struct {
	Item     uuid.UUID `json:"item"`
	Quantity int       `json:"quantity"`
}

type updateOrderBody struct {
	Quantity int `json:"quantity"`
}

// FetchOrders implements queries.OrderSource. The backend scopes the result
// to the credential: members see their own orders, admins see all.
func (c *Client) FetchOrders(ctx context.Context, token string) ([]*queries.OrderView, error) {
	var payload []orderPayload
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &payload); err != nil {
		return nil, err
	}

	orders := make([]*queries.OrderView, len(payload))
	for i, p := range payload {
		orders[i] = toOrderView(p)
	}
	return orders, nil
}

// CreateOrder implements commands.OrderWriter. The backend revalidates the
// quantity against its own counters; the gateway's admission check is a
// fast path, not the authority.
func (c *Client) CreateOrder(ctx context.Context, token string, toyID uuid.UUID, quantity int) (*queries.OrderView, error) {
	var payload orderPayload
	body := createOrderBody{Item: toyID, Quantity: quantity}
	if err := c.do(ctx, http.MethodPost, "/orders", token, body, &payload); err != nil {
		return nil, err
	}
	return toOrderView(payload), nil
}

func (c *Client) UpdateOrder(ctx context.Context, token string, id uuid.UUID, quantity int) (*queries.OrderView, error) {
	var payload orderPayload
	body := updateOrderBody{Quantity: quantity}
	if err := c.do(ctx, http.MethodPut, "/orders/"+id.String(), token, body, &payload); err != nil {
		return nil, err
	}
	return toOrderView(payload), nil
}

func (c *Client) DeleteOrder(ctx context.Context, token string, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+id.String(), token, nil, nil)
}

func toOrderView(p orderPayload) *queries.OrderView {
	return &queries.OrderView{
		ID:        p.ID,
		ToyID:     p.Item.ID,
		ToyName:   p.Item.Name,
		ToySKU:    p.Item.SKU,
		OwnerID:   p.Owner.ID,
		OwnerName: p.Owner.Name,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
	}
}
