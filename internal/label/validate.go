package label

import "strings"

// Ellipsis marks display-path truncation. The command path never emits
// it; the printer fonts have no glyph for it.
const Ellipsis = "…"

// CheckDigit computes the 12th UPC-A digit for an 11-digit payload:
// 3x the digits at odd positions (1-indexed) plus the digits at even
// positions, mod 10, subtracted from 10.
func CheckDigit(payload11 string) byte {
	var odd, even int
	for i := 0; i < len(payload11); i++ {
		d := int(payload11[i] - '0')
		if i%2 == 0 {
			odd += d
		} else {
			even += d
		}
	}
	check := (10 - (odd*3+even)%10) % 10
	return byte('0' + check)
}

// NormalizeUPC resolves raw user input to a 12-digit UPC-A payload.
// Non-digits are stripped first. 11 digits gain a computed check digit;
// 12 digits must already carry the correct one, a mismatch is rejected
// rather than corrected. Every other length fails.
func NormalizeUPC(raw string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	clean := b.String()
	switch len(clean) {
	case 11:
		return clean + string(CheckDigit(clean)), true
	case 12:
		if clean[11] == CheckDigit(clean[:11]) {
			return clean, true
		}
		return "", false
	default:
		return "", false
	}
}

// Truncate limits s to max characters, marking a cut with a trailing
// ellipsis. The result never exceeds max characters.
func Truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + Ellipsis
}

// Sanitize drops everything outside 7-bit ASCII and hard-truncates to
// max bytes, no marker. Lossy on purpose: both printer command languages
// are byte-oriented ASCII protocols.
func Sanitize(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r > 127 {
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// Wrap greedily packs whitespace-separated words into at most maxLines
// lines of at most maxChars characters. Words past the last line are
// dropped without a marker; dropped reports how many. A single word
// longer than maxChars sits alone on its line and is clipped.
func Wrap(s string, maxChars, maxLines int) (lines []string, dropped int) {
	words := strings.Fields(s)
	if len(words) == 0 || maxLines < 1 || maxChars < 1 {
		return nil, len(words)
	}
	cur := words[0]
	used := 1
	for _, w := range words[1:] {
		if len(cur)+1+len(w) <= maxChars {
			cur += " " + w
			used++
			continue
		}
		lines = append(lines, clip(cur, maxChars))
		if len(lines) == maxLines {
			return lines, len(words) - used
		}
		cur = w
		used++
	}
	lines = append(lines, clip(cur, maxChars))
	return lines, len(words) - used
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
