package queries

import (
	"time"

	"github.com/google/uuid"
)

// ToyView represents read-optimized catalog item data, a possibly-stale
// snapshot of backend state. It is never mutated locally to reflect an
// optimistic order placement.
type ToyView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	AvailableQuota int       `json:"available_quota"`
	Description    string    `json:"description"`
	PosterPicture  string    `json:"poster_picture"`
	ArrivalDate    time.Time `json:"arrival_date"`
}

// OrderView represents read-optimized order ledger data.
type OrderView struct {
	ID        uuid.UUID `json:"id"`
	ToyID     uuid.UUID `json:"toy_id"`
	ToyName   string    `json:"toy_name"`
	ToySKU    string    `json:"toy_sku"`
	OwnerID   uuid.UUID `json:"owner_id"`
	OwnerName string    `json:"owner_name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
