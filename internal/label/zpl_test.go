package label

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildZPLDeterministic(t *testing.T) {
	f := Fields{ItemNumber: "ABC", UPC: "036000291452", Title: "Test Item", Casepack: "6", Copies: 3}
	cfg := DefaultConfig("4x6")

	a := BuildZPL(f, cfg, Size4x6)
	b := BuildZPL(f, cfg, Size4x6)
	assert.True(t, bytes.Equal(a, b))
}

func TestBuildZPLFormatEnvelope(t *testing.T) {
	f := Fields{Title: "x", Copies: 1}
	s := string(BuildZPL(f, DefaultConfig("4x6"), Size4x6))

	require.True(t, strings.HasPrefix(s, "^XA"))
	require.True(t, strings.HasSuffix(s, "^XZ"))
	assert.Contains(t, s, "^PW812")
	assert.Contains(t, s, "^LL1218")
	assert.Contains(t, s, "^LH0,0")
	assert.Contains(t, s, "^CI28")
}

func TestBuildZPLValidUPCAndCopies(t *testing.T) {
	f := Fields{ItemNumber: "ABC", UPC: "036000291452", Title: "Test Item", Casepack: "6", Copies: 3}
	s := string(BuildZPL(f, DefaultConfig("4x6"), Size4x6))

	assert.Equal(t, 1, strings.Count(s, "^BU"), "exactly one barcode directive")
	assert.Contains(t, s, "^FD036000291452^FS")
	assert.Equal(t, 1, strings.Count(s, "^PQ3"), "exactly one copy directive")
}

func TestBuildZPLInvalidUPCOmitsBarcode(t *testing.T) {
	f := Fields{ItemNumber: "SKU-100", UPC: "6291041", Title: "Widget", Casepack: "12", Copies: 1}
	s := string(BuildZPL(f, DefaultConfig("2x1"), Size2x1))

	assert.Contains(t, s, "^FDWidget^FS")
	assert.Contains(t, s, "^FDItem: SKU-100^FS")
	assert.Contains(t, s, "^FDCasepack: 12^FS")
	assert.NotContains(t, s, "^BU")
	assert.NotContains(t, s, "^BY")
}

func TestBuildZPLSingleCopyImplicit(t *testing.T) {
	f := Fields{Title: "x", Copies: 1}
	s := string(BuildZPL(f, DefaultConfig("2x1"), Size2x1))
	assert.NotContains(t, s, "^PQ")
}

func TestBuildZPLCascadeMatchesEPL(t *testing.T) {
	// Both languages must place the item line at the same shifted
	// offset for a two-line title, so switching languages never moves
	// content.
	f := Fields{
		ItemNumber: "ITEM1",
		Title:      "Industrial Pneumatic Torque Wrench",
		Copies:     1,
	}
	cfg := DefaultConfig("2x1")

	wantY := cfg.ItemY + cfg.LineSpacing + cfg.LineSpacing
	zpl := string(BuildZPL(f, cfg, Size2x1))
	epl := string(BuildEPL(f, cfg, Size2x1))

	assert.Contains(t, zpl, fmt.Sprintf("^FO%d,%d^A0N", cfg.XMargin, wantY))
	assert.Contains(t, epl, fmt.Sprintf("A%d,%d,", cfg.XMargin, wantY))

	// Separator rule below the second title line in both.
	sepY := cfg.TitleY + 2*cfg.LineSpacing
	assert.Contains(t, zpl, fmt.Sprintf("^FO%d,%d^GB%d,%d,",
		cfg.XMargin, sepY, cfg.SeparatorWidth, cfg.SeparatorThickness))
}

func TestBuildZPLOrientation(t *testing.T) {
	f := Fields{ItemNumber: "ITEM1", UPC: "036000291452", Copies: 1}
	cfg := DefaultConfig("2x1")
	cfg.Orientation = OrientRotated90

	s := string(BuildZPL(f, cfg, Size2x1))
	assert.Contains(t, s, "^A0R,")
	assert.Contains(t, s, "^BUR,")
}

func TestBuildZPLStripsCommandPrefixes(t *testing.T) {
	f := Fields{ItemNumber: "AB^CD~EF", Copies: 1}
	s := string(BuildZPL(f, DefaultConfig("2x1"), Size2x1))
	assert.Contains(t, s, "^FDItem: ABCDEF^FS")
}

func TestDefaultConfigTiers(t *testing.T) {
	small := DefaultConfig("2x1")
	large := DefaultConfig("4x6")

	assert.Equal(t, 40, small.BarcodeHeight)
	assert.Equal(t, 280, large.BarcodeHeight)
	assert.Equal(t, 20, small.XMargin)
	assert.Equal(t, 40, large.XMargin)
	// Unknown sizes use the 4x6 tier, matching the geometry fallback.
	assert.Equal(t, large, DefaultConfig("3x5"))

	for _, cfg := range []LayoutConfig{small, large} {
		assert.Equal(t, 2, cfg.MaxTitleLines)
		assert.Equal(t, OrientNormal, cfg.Orientation)
		assert.True(t, cfg.ShowSeparator)
	}
}
