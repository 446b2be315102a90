//go:build unit

package builder

import (
	"time"

	"arttoy-storefront/internal/domain/catalog"
	reqdto "arttoy-storefront/internal/handler/dto/request"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type ToyBuilder struct {
	ID             uuid.UUID
	Name           string
	SKU            string
	AvailableQuota int
	Description    string
	PosterPicture  string
	ArrivalDate    time.Time
}

func NewToyBuilder() *ToyBuilder {
	return &ToyBuilder{
		ID:             uuid.New(),
		Name:           "Bearbrick 400%",
		SKU:            "BB-400",
		AvailableQuota: 10,
		Description:    "Collectible figure",
		PosterPicture:  "https://example.com/bb400.png",
		ArrivalDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ToyBuilder) BuildDomain() (*catalog.ArtToy, error) {
	return catalog.NewArtToy(
		b.ID,
		b.Name,
		b.SKU,
		b.AvailableQuota,
		b.Description,
		b.PosterPicture,
		b.ArrivalDate,
	)
}

func (b *ToyBuilder) BuildView() *queries.ToyView {
	return &queries.ToyView{
		ID:             b.ID,
		Name:           b.Name,
		SKU:            b.SKU,
		AvailableQuota: b.AvailableQuota,
		Description:    b.Description,
		PosterPicture:  b.PosterPicture,
		ArrivalDate:    b.ArrivalDate,
	}
}

func (b *ToyBuilder) BuildParams() commands.ToyParams {
	return commands.ToyParams{
		Name:           b.Name,
		SKU:            b.SKU,
		AvailableQuota: b.AvailableQuota,
		Description:    b.Description,
		PosterPicture:  b.PosterPicture,
		ArrivalDate:    b.ArrivalDate,
	}
}

func (b *ToyBuilder) BuildDTO() reqdto.SaveToyRequest {
	quota := b.AvailableQuota
	return reqdto.SaveToyRequest{
		Name:           b.Name,
		SKU:            b.SKU,
		AvailableQuota: &quota,
		Description:    b.Description,
		PosterPicture:  b.PosterPicture,
		ArrivalDate:    b.ArrivalDate,
	}
}

// Fluent builder methods
func (b *ToyBuilder) WithName(name string) *ToyBuilder {
	b.Name = name
	return b
}

func (b *ToyBuilder) WithSKU(sku string) *ToyBuilder {
	b.SKU = sku
	return b
}

func (b *ToyBuilder) WithQuota(quota int) *ToyBuilder {
	b.AvailableQuota = quota
	return b
}

func (b *ToyBuilder) WithArrivalDate(arrival time.Time) *ToyBuilder {
	b.ArrivalDate = arrival
	return b
}
