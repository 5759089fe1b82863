package preview

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"
)

// Symbol rasterizes a UPC-A symbol. The renderer treats it as an
// optional capability: a nil or failing Symbol degrades to a text
// placeholder, never an error.
type Symbol interface {
	RenderUPCA(payload string, moduleWidth, height int) (image.Image, error)
}

// EANSymbols renders UPC-A through the EAN-13 encoder; a UPC-A symbol
// is an EAN-13 with a leading zero, and its check digit carries over
// unchanged.
type EANSymbols struct{}

func (EANSymbols) RenderUPCA(payload string, moduleWidth, height int) (image.Image, error) {
	if len(payload) != 12 {
		return nil, fmt.Errorf("upc-a payload must be 12 digits, got %d", len(payload))
	}
	if moduleWidth < 1 {
		moduleWidth = 1
	}
	code, err := ean.Encode("0" + payload)
	if err != nil {
		return nil, fmt.Errorf("encode upc-a: %w", err)
	}
	scaled, err := barcode.Scale(code, code.Bounds().Dx()*moduleWidth, height)
	if err != nil {
		return nil, fmt.Errorf("scale upc-a: %w", err)
	}
	return scaled, nil
}
