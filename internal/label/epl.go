package label

import (
	"fmt"
	"strings"
)

// EPL builds EPL2 command streams, one CRLF-terminated directive per
// call.
type EPL struct {
	buf strings.Builder
}

func NewEPL() *EPL {
	return &EPL{}
}

// ClearBuffer empties the printer's image buffer.
func (e *EPL) ClearBuffer() *EPL {
	e.buf.WriteString("N\r\n")
	return e
}

// PrintWidth sets the printable width in dots.
func (e *EPL) PrintWidth(dots int) *EPL {
	fmt.Fprintf(&e.buf, "q%d\r\n", dots)
	return e
}

// PrintLength sets the label length and gap in dots.
func (e *EPL) PrintLength(dots, gap int) *EPL {
	fmt.Fprintf(&e.buf, "Q%d,%d\r\n", dots, gap)
	return e
}

// Text places an ASCII text field. rot is the quarter-turn count 0-3,
// font an EPL bitmap font 1-5, mulX/mulY the expansion multipliers.
// Double quotes would terminate the field data, so they are softened to
// apostrophes.
func (e *EPL) Text(x, y, rot, font, mulX, mulY int, text string) *EPL {
	text = strings.ReplaceAll(text, `"`, "'")
	fmt.Fprintf(&e.buf, "A%d,%d,%d,%d,%d,%d,N,\"%s\"\r\n", x, y, rot, font, mulX, mulY, text)
	return e
}

// Rule draws a solid black rectangle, used for the title separator.
func (e *EPL) Rule(x, y, w, h int) *EPL {
	fmt.Fprintf(&e.buf, "LO%d,%d,%d,%d\r\n", x, y, w, h)
	return e
}

// UPCA places a UPC-A symbol. hri is the human-readable text position
// code; data must be the 12-digit payload.
func (e *EPL) UPCA(x, y, rot, narrow, wide, height int, hri, data string) *EPL {
	fmt.Fprintf(&e.buf, "B%d,%d,%d,U,%d,%d,%d,%s,%s\r\n", x, y, rot, narrow, wide, height, hri, data)
	return e
}

// Code128 places a Code 128 symbol (type "1", auto subset). Useful for
// non-UPC payloads such as internal item numbers.
func (e *EPL) Code128(x, y, rot, narrow, wide, height int, hri, data string) *EPL {
	fmt.Fprintf(&e.buf, "B%d,%d,%d,1,%d,%d,%d,%s,\"%s\"\r\n", x, y, rot, narrow, wide, height, hri, data)
	return e
}

// Print emits the print directive for n copies.
func (e *EPL) Print(copies int) *EPL {
	fmt.Fprintf(&e.buf, "P%d\r\n", copies)
	return e
}

// Bytes returns the ASCII-encoded command stream.
func (e *EPL) Bytes() []byte {
	return encodeASCII(e.buf.String())
}

// String returns the raw command text, for logs and debugging.
func (e *EPL) String() string {
	return e.buf.String()
}

func eplRotation(o Orientation) int {
	switch o {
	case OrientRotated90:
		return 1
	case OrientRotated180:
		return 2
	case OrientRotated270:
		return 3
	default:
		return 0
	}
}

// BuildEPL renders one label as an EPL2 command stream. Pure: identical
// inputs yield byte-identical output.
func BuildEPL(f Fields, cfg LayoutConfig, size Size) []byte {
	rot := eplRotation(cfg.Orientation)
	item := Sanitize(f.ItemNumber, cfg.ItemMaxChars)
	casepack := Sanitize(f.Casepack, cfg.CaseMaxChars)
	lay := layoutTitle(f.Title, cfg)

	e := NewEPL().
		ClearBuffer().
		PrintWidth(size.WidthDots).
		PrintLength(size.HeightDots, 24)

	for i, line := range lay.lines {
		e.Text(cfg.XMargin, cfg.TitleY+i*cfg.LineSpacing, rot,
			cfg.TitleFont, cfg.TitleMulX, cfg.TitleMulY, line)
	}
	if lay.separator {
		e.Rule(cfg.XMargin, lay.sepY, cfg.SeparatorWidth, cfg.SeparatorThickness)
	}

	e.Text(cfg.XMargin, cfg.ItemY+lay.shift, rot, cfg.TextFont, 1, 1, "Item: "+item)
	if casepack != "" {
		e.Text(cfg.XMargin, cfg.CaseY+lay.shift, rot, cfg.TextFont, 1, 1, "Casepack: "+casepack)
	}

	if payload := barcodePayload(f.UPC); payload != "" {
		e.UPCA(cfg.XMargin, cfg.BarcodeY+lay.shift, rot,
			cfg.BarcodeNarrow, cfg.BarcodeWide, cfg.BarcodeHeight, cfg.BarcodeHRI, payload)
	}

	return e.Print(clampCopies(f.Copies)).Bytes()
}
