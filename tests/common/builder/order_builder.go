//go:build unit

package builder

import (
	"time"

	reqdto "arttoy-storefront/internal/handler/dto/request"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID        uuid.UUID
	ToyID     uuid.UUID
	ToyName   string
	ToySKU    string
	OwnerID   uuid.UUID
	OwnerName string
	Quantity  int
	CreatedAt time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:        uuid.New(),
		ToyID:     uuid.New(),
		ToyName:   "Bearbrick 400%",
		ToySKU:    "BB-400",
		OwnerID:   uuid.New(),
		OwnerName: "test user",
		Quantity:  1,
		CreatedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:        b.ID,
		ToyID:     b.ToyID,
		ToyName:   b.ToyName,
		ToySKU:    b.ToySKU,
		OwnerID:   b.OwnerID,
		OwnerName: b.OwnerName,
		Quantity:  b.Quantity,
		CreatedAt: b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildPlaceDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		ItemID:   b.ToyID,
		Quantity: b.Quantity,
	}
}

func (b *OrderBuilder) BuildPlaceParams() commands.PlaceOrderParams {
	return commands.PlaceOrderParams{
		ToyID:    b.ToyID,
		Quantity: b.Quantity,
	}
}

// Fluent builder methods
func (b *OrderBuilder) WithToyID(id uuid.UUID) *OrderBuilder {
	b.ToyID = id
	return b
}

func (b *OrderBuilder) WithQuantity(quantity int) *OrderBuilder {
	b.Quantity = quantity
	return b
}
