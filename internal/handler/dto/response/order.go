package response

import (
	"time"

	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID        uuid.UUID `json:"id"`
	ToyID     uuid.UUID `json:"toyId"`
	ToyName   string    `json:"toyName"`
	ToySKU    string    `json:"toySku"`
	OwnerID   uuid.UUID `json:"ownerId"`
	OwnerName string    `json:"ownerName"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdmissionResponse struct {
	Quantity       int  `json:"quantity"`
	AvailableQuota int  `json:"availableQuota"`
	CanSubmit      bool `json:"canSubmit"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	resp := make([]*OrderResponse, len(views))
	for i, v := range views {
		resp[i] = FromOrderView(v)
	}
	return resp
}

func FromAdmissionResult(result *commands.AdmissionResult) *AdmissionResponse {
	return &AdmissionResponse{
		Quantity:       result.Quantity,
		AvailableQuota: result.AvailableQuota,
		CanSubmit:      result.CanSubmit,
	}
}
