package label

// Fields is one label's worth of user input. All text is untrusted and
// sanitized inside the generators.
type Fields struct {
	ItemNumber string
	UPC        string
	Title      string
	Casepack   string
	Copies     int
}

// titleLayout is the vertical plan both generators (and the preview)
// derive from the wrapped title. Everything below the title shifts by
// the same amount, so switching command languages never moves content.
type titleLayout struct {
	lines     []string
	shift     int
	separator bool
	sepY      int
}

func layoutTitle(title string, cfg LayoutConfig) titleLayout {
	lines, _ := Wrap(Sanitize(title, 64), cfg.TitleMaxChars, cfg.MaxTitleLines)
	lay := titleLayout{lines: lines}
	if n := len(lines); n > 1 {
		lay.shift = (n - 1) * cfg.LineSpacing
	}
	if cfg.ShowSeparator && len(lines) > 0 {
		lay.separator = true
		lay.sepY = cfg.TitleY + len(lines)*cfg.LineSpacing
		// The rule costs one line-spacing unit of vertical room.
		lay.shift += cfg.LineSpacing
	}
	return lay
}

// barcodePayload resolves raw UPC input for the generator path. Inputs
// are expected to be validated with NormalizeUPC upstream; here any
// digit string of 11 or more is accepted (11 gains a check digit, 12+
// is clipped), and anything shorter means no barcode.
func barcodePayload(raw string) string {
	var digits []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	switch {
	case len(digits) >= 12:
		return string(digits[:12])
	case len(digits) == 11:
		return string(digits) + string(CheckDigit(string(digits)))
	default:
		return ""
	}
}

// clampCopies keeps the copy count printable.
func clampCopies(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// encodeASCII drops anything a byte-oriented ASCII protocol cannot
// carry. It never fails a job over an odd character.
func encodeASCII(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 127 {
			out = append(out, byte(r))
		}
	}
	return out
}

// eplFontCell is the dot cell of each EPL bitmap font at 203 dpi. The
// ZPL generator multiplies these by the configured font multipliers to
// get equivalent ^A0 cell sizes.
var eplFontCell = map[int][2]int{
	1: {8, 12},
	2: {10, 16},
	3: {12, 20},
	4: {14, 24},
	5: {32, 48},
}

func fontCell(font int) (w, h int) {
	cell, ok := eplFontCell[font]
	if !ok {
		cell = eplFontCell[3]
	}
	return cell[0], cell[1]
}
