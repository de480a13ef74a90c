package catalog

import domdev "github.com/kailas-cloud/padex/internal/domain/device"

func boolPtr(b bool) *bool { return &b }

// demoDevices is the fixed demo fixture inserted by Seed into an empty
// collection.
var demoDevices = []domdev.Device{
	{
		Name:           "iPad Pro 11",
		Generation:     "M4 (2024)",
		Chip:           "M4",
		DisplaySize:    11.0,
		StorageOptions: []int{256, 512, 1024},
		BasePrice:      999.0,
		Colors:         []string{"Silver", "Space Black"},
		SupportsPencil: "Apple Pencil Pro",
		Cellular:       boolPtr(true),
		ImageURL:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/ipad-pro-11-digitalmat-gallery-1-202404?wid=728&hei=666&fmt=png-alpha&.v=1712605559398",
	},
	{
		Name:           "iPad Air 13",
		Generation:     "M2 (2024)",
		Chip:           "M2",
		DisplaySize:    13.0,
		StorageOptions: []int{128, 256, 512},
		BasePrice:      799.0,
		Colors:         []string{"Blue", "Purple", "Starlight", "Space Gray"},
		SupportsPencil: "Apple Pencil Pro",
		Cellular:       boolPtr(true),
		ImageURL:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/ipad-air-13-digitalmat-gallery-1-202405?wid=728&hei=666&fmt=png-alpha&.v=1713836176004",
	},
	{
		Name:           "iPad (10th gen)",
		Generation:     "A14 (2022)",
		Chip:           "A14",
		DisplaySize:    10.9,
		StorageOptions: []int{64, 256},
		BasePrice:      349.0,
		Colors:         []string{"Blue", "Pink", "Yellow", "Silver"},
		SupportsPencil: "USB‑C Apple Pencil",
		Cellular:       boolPtr(true),
		ImageURL:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/ipad-10th-gen-hero-blue-wifi-select?wid=540&hei=540&fmt=jpeg&qlt=90&.v=1664481087749",
	},
	{
		Name:           "iPad mini",
		Generation:     "A15 (2021)",
		Chip:           "A15",
		DisplaySize:    8.3,
		StorageOptions: []int{64, 256},
		BasePrice:      499.0,
		Colors:         []string{"Space Gray", "Pink", "Purple", "Starlight"},
		SupportsPencil: "Apple Pencil (2nd gen)",
		Cellular:       boolPtr(true),
		ImageURL:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/ipad-mini-select-202109_GEO_US?wid=540&hei=540&fmt=jpeg&qlt=90&.v=1631751068000",
	},
}
