package device

import (
	"encoding/json"

	"github.com/kailas-cloud/padex/internal/db"
	domdev "github.com/kailas-cloud/padex/internal/domain/device"
)

// fromDocument converts raw store fields into a domain Device. The gateway
// already stripped the native identifier into doc.ID.
func fromDocument(doc db.Document) (domdev.Device, error) {
	data, err := json.Marshal(doc.Fields)
	if err != nil {
		return domdev.Device{}, err
	}

	var dev domdev.Device
	if err := json.Unmarshal(data, &dev); err != nil {
		return domdev.Device{}, err
	}
	dev.ID = doc.ID
	return dev, nil
}

// toFields flattens a Device into store fields. The identifier is omitted:
// the store assigns it on insert.
func toFields(dev *domdev.Device) (map[string]any, error) {
	clone := *dev
	clone.ID = ""

	data, err := json.Marshal(&clone)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	delete(fields, "id")
	return fields, nil
}
