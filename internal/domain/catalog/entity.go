package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyToyName    = errors.New("toy name cannot be empty")
	ErrEmptySKU        = errors.New("sku cannot be empty")
	ErrNegativeQuota   = errors.New("available quota cannot be negative")
	ErrToyNameTooLong  = errors.New("toy name is too long (max 255 characters)")
	ErrInvalidSKU      = errors.New("sku may only contain letters, digits and dashes")
	ErrZeroArrivalDate = errors.New("arrival date is required")
)

const (
	MaxToyNameLength = 255
	MaxSKULength     = 64
)

// ArtToy is a read-only snapshot of a catalog item owned by the backend.
// The gateway never mutates it locally; quota changes arrive only through
// a fresh fetch.
type ArtToy struct {
	id             uuid.UUID
	name           string
	sku            string
	availableQuota int
	description    string
	posterPicture  string
	arrivalDate    time.Time
}

func NewArtToy(id uuid.UUID, name, sku string, availableQuota int, description, posterPicture string, arrivalDate time.Time) (*ArtToy, error) {
	if err := validateToyName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if availableQuota < 0 {
		return nil, ErrNegativeQuota
	}
	if arrivalDate.IsZero() {
		return nil, ErrZeroArrivalDate
	}

	return &ArtToy{
		id:             id,
		name:           strings.TrimSpace(name),
		sku:            strings.ToUpper(strings.TrimSpace(sku)),
		availableQuota: availableQuota,
		description:    description,
		posterPicture:  posterPicture,
		arrivalDate:    arrivalDate,
	}, nil
}

// IsOrderable reports whether any order at all can be admitted for this toy.
func (t *ArtToy) IsOrderable() bool {
	return t.availableQuota >= 1
}

func validateToyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyToyName
	}
	if len(name) > MaxToyNameLength {
		return ErrToyNameTooLong
	}
	return nil
}

func validateSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return ErrEmptySKU
	}
	if len(sku) > MaxSKULength {
		return ErrInvalidSKU
	}
	for _, r := range sku {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return ErrInvalidSKU
		}
	}
	return nil
}

func (t *ArtToy) ID() uuid.UUID          { return t.id }
func (t *ArtToy) Name() string           { return t.name }
func (t *ArtToy) SKU() string            { return t.sku }
func (t *ArtToy) AvailableQuota() int    { return t.availableQuota }
func (t *ArtToy) Description() string    { return t.description }
func (t *ArtToy) PosterPicture() string  { return t.posterPicture }
func (t *ArtToy) ArrivalDate() time.Time { return t.arrivalDate }
