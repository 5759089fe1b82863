package label

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEPLDeterministic(t *testing.T) {
	f := Fields{ItemNumber: "ABC", UPC: "036000291452", Title: "Test Item", Casepack: "6", Copies: 3}
	cfg := DefaultConfig("4x6")

	a := BuildEPL(f, cfg, Size4x6)
	b := BuildEPL(f, cfg, Size4x6)
	assert.True(t, bytes.Equal(a, b), "identical inputs must produce byte-identical output")
}

func TestBuildEPLInvalidUPCOmitsBarcode(t *testing.T) {
	f := Fields{ItemNumber: "SKU-100", UPC: "6291041", Title: "Widget", Casepack: "12", Copies: 1}
	cfg := DefaultConfig("2x1")

	s := string(BuildEPL(f, cfg, Size2x1))

	assert.Contains(t, s, `"Widget"`)
	assert.Contains(t, s, `"Item: SKU-100"`)
	assert.Contains(t, s, `"Casepack: 12"`)
	// 7 digits is neither 11 nor 12: no barcode directive at all.
	assert.NotContains(t, s, ",U,")
	assert.Contains(t, s, "P1\r\n")
}

func TestBuildEPLValidUPCAndCopies(t *testing.T) {
	f := Fields{ItemNumber: "ABC", UPC: "036000291452", Title: "Test Item", Casepack: "6", Copies: 3}
	cfg := DefaultConfig("4x6")

	s := string(BuildEPL(f, cfg, Size4x6))

	assert.Equal(t, 1, strings.Count(s, ",U,"), "exactly one barcode directive")
	assert.Contains(t, s, ",036000291452\r\n")
	assert.Equal(t, 1, strings.Count(s, "P3\r\n"), "exactly one copy directive")
}

func TestBuildEPLHeader(t *testing.T) {
	f := Fields{Title: "x", Copies: 1}
	s := string(BuildEPL(f, DefaultConfig("4x6"), Size4x6))

	require.True(t, strings.HasPrefix(s, "N\r\n"))
	assert.Contains(t, s, "q812\r\n")
	assert.Contains(t, s, "Q1218,24\r\n")
}

func TestBuildEPLTitleCascade(t *testing.T) {
	// Longer than one 24-char line: wraps to exactly two lines with the
	// default limits, and with the separator on, the item line drops by
	// line spacing plus the separator gap.
	f := Fields{
		ItemNumber: "ITEM1",
		Title:      "Industrial Pneumatic Torque Wrench",
		Copies:     1,
	}
	cfg := DefaultConfig("2x1")
	require.True(t, cfg.ShowSeparator)

	s := string(BuildEPL(f, cfg, Size2x1))

	titleLines := 0
	for _, line := range strings.Split(s, "\r\n") {
		if strings.HasPrefix(line, "A") && !strings.Contains(line, "Item:") {
			titleLines++
		}
	}
	assert.Equal(t, 2, titleLines)

	wantY := cfg.ItemY + cfg.LineSpacing + cfg.LineSpacing
	assert.Contains(t, s, fmt.Sprintf("A%d,%d,0,%d,1,1,N,\"Item: ITEM1\"",
		cfg.XMargin, wantY, cfg.TextFont))

	// Separator rule sits just below the second title line.
	sepY := cfg.TitleY + 2*cfg.LineSpacing
	assert.Contains(t, s, fmt.Sprintf("LO%d,%d,%d,%d",
		cfg.XMargin, sepY, cfg.SeparatorWidth, cfg.SeparatorThickness))
}

func TestBuildEPLEmptyTitleNoSeparator(t *testing.T) {
	f := Fields{ItemNumber: "ITEM1", Copies: 1}
	cfg := DefaultConfig("2x1")

	s := string(BuildEPL(f, cfg, Size2x1))

	assert.NotContains(t, s, "LO", "no separator without a title")
	// No cascade either: item sits at its configured offset.
	assert.Contains(t, s, fmt.Sprintf("A%d,%d,", cfg.XMargin, cfg.ItemY))
}

func TestBuildEPLEmptyCasepackOmitted(t *testing.T) {
	f := Fields{ItemNumber: "ITEM1", Title: "x", Copies: 1}
	s := string(BuildEPL(f, DefaultConfig("2x1"), Size2x1))
	assert.NotContains(t, s, "Casepack:")
}

func TestBuildEPLCopiesClamped(t *testing.T) {
	f := Fields{Title: "x", Copies: 0}
	s := string(BuildEPL(f, DefaultConfig("2x1"), Size2x1))
	assert.Contains(t, s, "P1\r\n")
}

func TestBuildEPLOrientation(t *testing.T) {
	f := Fields{ItemNumber: "ITEM1", Copies: 1}
	cfg := DefaultConfig("2x1")
	cfg.Orientation = OrientRotated90

	s := string(BuildEPL(f, cfg, Size2x1))
	assert.Contains(t, s, fmt.Sprintf("A%d,%d,1,", cfg.XMargin, cfg.ItemY))
}

func TestBuildEPLOutputIsASCII(t *testing.T) {
	f := Fields{ItemNumber: "Café", Title: "Günther's Würst", Copies: 1}
	data := BuildEPL(f, DefaultConfig("2x1"), Size2x1)
	for _, b := range data {
		assert.LessOrEqual(t, b, byte(127))
	}
}

func TestBuildEPLElevenDigitUPCGainsCheckDigit(t *testing.T) {
	f := Fields{UPC: "03600029145", Copies: 1}
	s := string(BuildEPL(f, DefaultConfig("2x1"), Size2x1))
	assert.Contains(t, s, ",036000291452\r\n")
}
