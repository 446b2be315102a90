package request

import (
	"time"

	"arttoy-storefront/internal/usecase/commands"
)

type SaveToyRequest struct {
	Name           string    `json:"name" binding:"required,max=255"`
	SKU            string    `json:"sku" binding:"required,max=64"`
	AvailableQuota *int      `json:"availableQuota" binding:"required,min=0"`
	Description    string    `json:"description"`
	PosterPicture  string    `json:"posterPicture"`
	ArrivalDate    time.Time `json:"arrivalDate" binding:"required"`
}

func (r SaveToyRequest) ToParams() commands.ToyParams {
	quota := 0
	if r.AvailableQuota != nil {
		quota = *r.AvailableQuota
	}
	return commands.ToyParams{
		Name:           r.Name,
		SKU:            r.SKU,
		AvailableQuota: quota,
		Description:    r.Description,
		PosterPicture:  r.PosterPicture,
		ArrivalDate:    r.ArrivalDate,
	}
}
