package device

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/padex/internal/domain"
)

func validDevice() Device {
	return Device{
		Name:           "iPad Pro 11",
		Generation:     "M4 (2024)",
		Chip:           "M4",
		DisplaySize:    11.0,
		StorageOptions: []int{256, 512, 1024},
		BasePrice:      999.0,
		Colors:         []string{"Silver", "Space Black"},
		SupportsPencil: "Apple Pencil Pro",
		Cellular:       boolPtr(true),
		ImageURL:       "https://example.com/ipad-pro-11.png",
	}
}

func TestValidate_Success(t *testing.T) {
	d := validDevice()
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_CellularFalseIsValid(t *testing.T) {
	d := validDevice()
	d.Cellular = boolPtr(false)
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected error for cellular=false: %v", err)
	}
}

func TestValidate_MissingName(t *testing.T) {
	d := validDevice()
	d.Name = ""

	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "Name" {
		t.Errorf("expected a single Name field error, got %+v", verr.Fields)
	}
}

func TestValidate_MissingCellular(t *testing.T) {
	d := validDevice()
	d.Cellular = nil
	if err := d.Validate(); err == nil {
		t.Fatal("expected validation error for absent cellular flag")
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	d := Device{}

	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if len(verr.Fields) < 5 {
		t.Errorf("expected failures for every required field, got %d", len(verr.Fields))
	}
}

func TestValidate_BadImageURL(t *testing.T) {
	d := validDevice()
	d.ImageURL = "not a url"
	if err := d.Validate(); err == nil {
		t.Fatal("expected validation error for malformed image_url")
	}
}
