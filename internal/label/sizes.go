package label

// DPI is the reference print resolution. All dot coordinates in this
// package assume it.
const DPI = 203

// Size is a supported label geometry in device dots.
type Size struct {
	Name       string
	WidthDots  int
	HeightDots int
}

// Stock sizes, inches at 203 dpi.
var (
	Size2x1 = Size{"2x1", 2 * DPI, 1 * DPI}
	Size4x6 = Size{"4x6", 4 * DPI, 6 * DPI}
)

var AllSizes = []Size{Size2x1, Size4x6}

// SizeFor resolves a size key to its geometry. Unknown keys fall back to
// 4x6; label pipelines often run unattended and must not stop on a stale
// key.
func SizeFor(key string) Size {
	for _, s := range AllSizes {
		if s.Name == key {
			return s
		}
	}
	return Size4x6
}
