package request

import (
	"arttoy-storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	ItemID   uuid.UUID `json:"itemId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1,max=5"`
}

func (r PlaceOrderRequest) ToParams() commands.PlaceOrderParams {
	return commands.PlaceOrderParams{
		ToyID:    r.ItemID,
		Quantity: r.Quantity,
	}
}

type AmendOrderRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=5"`
}

// PreviewOrderRequest is a stepper move: the current dialog quantity plus a
// delta of -1, 0 or +1. Delta 0 re-clamps against a refreshed quota.
type PreviewOrderRequest struct {
	ItemID   uuid.UUID `json:"itemId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
	Delta    int       `json:"delta" binding:"min=-1,max=1"`
}

func (r PreviewOrderRequest) ToParams() commands.PreviewParams {
	return commands.PreviewParams{
		ToyID:    r.ItemID,
		Quantity: r.Quantity,
		Delta:    r.Delta,
	}
}
