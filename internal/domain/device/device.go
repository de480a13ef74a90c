// Package device defines the catalog's sole entity: a tablet device record.
package device

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/kailas-cloud/padex/internal/domain"
)

// Device is a single tablet record. ID is opaque, assigned by the store on
// insert, and exposed as a plain string on the wire (never the store-native
// identifier type).
type Device struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name" validate:"required"`
	Generation     string   `json:"generation" validate:"required"`
	Chip           string   `json:"chip" validate:"required"`
	DisplaySize    float64  `json:"display_size" validate:"required,gt=0"`
	StorageOptions []int    `json:"storage_options" validate:"required,min=1,dive,gt=0"`
	BasePrice      float64  `json:"base_price" validate:"required,gt=0"`
	Colors         []string `json:"colors" validate:"required,min=1,dive,required"`
	SupportsPencil string   `json:"supports_pencil" validate:"required"`
	Cellular       *bool    `json:"cellular" validate:"required"`
	ImageURL       string   `json:"image_url" validate:"required,url"`
}

// validate caches compiled struct rules across requests.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks shape and required fields of an incoming record.
// Returns a *domain.ValidationError listing every failed field.
func (d *Device) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "body", Reason: err.Error()}}}
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:  fe.Field(),
			Reason: "failed constraint " + fe.Tag(),
		})
	}
	return &domain.ValidationError{Fields: fields}
}

// IsCellular reports the cellular flag, treating an absent pointer as false.
func (d *Device) IsCellular() bool {
	return d.Cellular != nil && *d.Cellular
}
