package label

import (
	"fmt"
	"strings"
)

// ZPL builds ZPL II command streams. Directives are concatenated with
// no separators; ^XZ terminates the format.
type ZPL struct {
	buf strings.Builder
}

func NewZPL() *ZPL {
	return &ZPL{}
}

// Start opens a label format.
func (z *ZPL) Start() *ZPL {
	z.buf.WriteString("^XA")
	return z
}

// PrintWidth sets the printable width in dots.
func (z *ZPL) PrintWidth(dots int) *ZPL {
	fmt.Fprintf(&z.buf, "^PW%d", dots)
	return z
}

// LabelLength sets the label length in dots.
func (z *ZPL) LabelLength(dots int) *ZPL {
	fmt.Fprintf(&z.buf, "^LL%d", dots)
	return z
}

// Home sets the label home position.
func (z *ZPL) Home(x, y int) *ZPL {
	fmt.Fprintf(&z.buf, "^LH%d,%d", x, y)
	return z
}

// EncodingUTF8 selects the UTF-8 character set. Field data is still
// sanitized to ASCII before it reaches the builder.
func (z *ZPL) EncodingUTF8() *ZPL {
	z.buf.WriteString("^CI28")
	return z
}

// Text places a scalable-font text field. orient is the ZPL rotation
// code (N/R/I/B); h and w are the character cell in dots. ^ and ~ are
// command prefixes inside field data and are dropped.
func (z *ZPL) Text(x, y int, orient string, h, w int, data string) *ZPL {
	data = strings.NewReplacer("^", "", "~", "").Replace(data)
	fmt.Fprintf(&z.buf, "^FO%d,%d^A0%s,%d,%d^FD%s^FS", x, y, orient, h, w, data)
	return z
}

// Rule draws a filled box, used for the title separator.
func (z *ZPL) Rule(x, y, w, h int) *ZPL {
	fmt.Fprintf(&z.buf, "^FO%d,%d^GB%d,%d,%d^FS", x, y, w, h, h)
	return z
}

// BarcodeDefaults sets module width (dots), wide-to-narrow ratio and
// default height for subsequent barcode fields.
func (z *ZPL) BarcodeDefaults(module, ratio, height int) *ZPL {
	fmt.Fprintf(&z.buf, "^BY%d,%d,%d", module, ratio, height)
	return z
}

// UPCA places a UPC-A symbol (^BU). hri prints the interpretation line
// below the symbol; data must be the 12-digit payload.
func (z *ZPL) UPCA(x, y int, orient string, height int, hri bool, data string) *ZPL {
	line := "N"
	if hri {
		line = "Y"
	}
	fmt.Fprintf(&z.buf, "^FO%d,%d^BU%s,%d,%s,N^FD%s^FS", x, y, orient, height, line, data)
	return z
}

// Code128 places a Code 128 symbol (^BC). Useful for non-UPC payloads
// such as internal item numbers.
func (z *ZPL) Code128(x, y int, orient string, height int, hri bool, data string) *ZPL {
	line := "N"
	if hri {
		line = "Y"
	}
	data = strings.NewReplacer("^", "", "~", "").Replace(data)
	fmt.Fprintf(&z.buf, "^FO%d,%d^BC%s,%d,%s,N,N^FD%s^FS", x, y, orient, height, line, data)
	return z
}

// PrintQuantity sets the copy count.
func (z *ZPL) PrintQuantity(n int) *ZPL {
	fmt.Fprintf(&z.buf, "^PQ%d", n)
	return z
}

// End closes the label format.
func (z *ZPL) End() *ZPL {
	z.buf.WriteString("^XZ")
	return z
}

// Bytes returns the ASCII-encoded command stream.
func (z *ZPL) Bytes() []byte {
	return encodeASCII(z.buf.String())
}

// String returns the raw command text, for logs and debugging.
func (z *ZPL) String() string {
	return z.buf.String()
}

func zplOrientation(o Orientation) string {
	switch o {
	case OrientRotated90:
		return "R"
	case OrientRotated180:
		return "I"
	case OrientRotated270:
		return "B"
	default:
		return "N"
	}
}

// BuildZPL renders one label as a ZPL II command stream. It applies the
// same text layout and vertical cascade as BuildEPL, so callers can
// switch languages with no other visible change.
func BuildZPL(f Fields, cfg LayoutConfig, size Size) []byte {
	orient := zplOrientation(cfg.Orientation)
	item := Sanitize(f.ItemNumber, cfg.ItemMaxChars)
	casepack := Sanitize(f.Casepack, cfg.CaseMaxChars)
	lay := layoutTitle(f.Title, cfg)

	titleW, titleH := fontCell(cfg.TitleFont)
	textW, textH := fontCell(cfg.TextFont)
	titleW *= cfg.TitleMulX
	titleH *= cfg.TitleMulY

	z := NewZPL().
		Start().
		PrintWidth(size.WidthDots).
		LabelLength(size.HeightDots).
		Home(0, 0).
		EncodingUTF8()

	for i, line := range lay.lines {
		z.Text(cfg.XMargin, cfg.TitleY+i*cfg.LineSpacing, orient, titleH, titleW, line)
	}
	if lay.separator {
		z.Rule(cfg.XMargin, lay.sepY, cfg.SeparatorWidth, cfg.SeparatorThickness)
	}

	z.Text(cfg.XMargin, cfg.ItemY+lay.shift, orient, textH, textW, "Item: "+item)
	if casepack != "" {
		z.Text(cfg.XMargin, cfg.CaseY+lay.shift, orient, textH, textW, "Casepack: "+casepack)
	}

	if payload := barcodePayload(f.UPC); payload != "" {
		z.BarcodeDefaults(cfg.BarcodeNarrow, 2, 10).
			UPCA(cfg.XMargin, cfg.BarcodeY+lay.shift, orient,
				cfg.BarcodeHeight, cfg.BarcodeHRI != "N", payload)
	}

	if copies := clampCopies(f.Copies); copies > 1 {
		z.PrintQuantity(copies)
	}

	return z.End().Bytes()
}
