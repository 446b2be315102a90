package response

import (
	"time"

	"arttoy-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ToyResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	AvailableQuota int       `json:"availableQuota"`
	Description    string    `json:"description"`
	PosterPicture  string    `json:"posterPicture"`
	ArrivalDate    time.Time `json:"arrivalDate"`
}

func FromToyView(view *queries.ToyView) *ToyResponse {
	var resp ToyResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromToyViews(views []*queries.ToyView) []*ToyResponse {
	resp := make([]*ToyResponse, len(views))
	for i, v := range views {
		resp[i] = FromToyView(v)
	}
	return resp
}
