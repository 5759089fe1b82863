package label

// Orientation of the printed label relative to the feed direction.
type Orientation string

const (
	OrientNormal     Orientation = "normal"
	OrientRotated90  Orientation = "rotated90"
	OrientRotated180 Orientation = "rotated180"
	OrientRotated270 Orientation = "rotated270"
)

// LayoutConfig is the resolved set of geometric and typographic
// parameters for one (printer, size) pair. Instances are read-only
// snapshots once handed to a generator; the settings manager replaces
// whole records, never individual fields.
type LayoutConfig struct {
	// Fonts. Font selectors are EPL bitmap font numbers 1-5; the ZPL
	// generator derives its cell sizes from the same selector.
	TitleFont int `mapstructure:"title_font" yaml:"title_font"`
	TextFont  int `mapstructure:"text_font" yaml:"text_font"`
	TitleMulX int `mapstructure:"title_xy_mul_x" yaml:"title_xy_mul_x"`
	TitleMulY int `mapstructure:"title_xy_mul_y" yaml:"title_xy_mul_y"`

	// Layout and spacing, dots.
	XMargin     int `mapstructure:"x_margin" yaml:"x_margin"`
	TitleY      int `mapstructure:"title_y" yaml:"title_y"`
	ItemY       int `mapstructure:"item_y" yaml:"item_y"`
	CaseY       int `mapstructure:"case_y" yaml:"case_y"`
	BarcodeY    int `mapstructure:"barcode_y" yaml:"barcode_y"`
	LineSpacing int `mapstructure:"line_spacing" yaml:"line_spacing"`

	// Text limits, characters.
	TitleMaxChars int `mapstructure:"title_max_chars" yaml:"title_max_chars"`
	ItemMaxChars  int `mapstructure:"item_max_chars" yaml:"item_max_chars"`
	CaseMaxChars  int `mapstructure:"case_max_chars" yaml:"case_max_chars"`
	MaxTitleLines int `mapstructure:"max_title_lines" yaml:"max_title_lines"`

	// Separator rule under the title.
	ShowSeparator      bool `mapstructure:"show_separator" yaml:"show_separator"`
	SeparatorWidth     int  `mapstructure:"separator_width" yaml:"separator_width"`
	SeparatorThickness int  `mapstructure:"separator_thickness" yaml:"separator_thickness"`

	// Barcode geometry. HRI is the human-readable text position code
	// ("B" below, "N" none).
	BarcodeHeight int    `mapstructure:"barcode_height" yaml:"barcode_height"`
	BarcodeNarrow int    `mapstructure:"barcode_narrow" yaml:"barcode_narrow"`
	BarcodeWide   int    `mapstructure:"barcode_wide" yaml:"barcode_wide"`
	BarcodeHRI    string `mapstructure:"barcode_hri" yaml:"barcode_hri"`

	Orientation Orientation `mapstructure:"orientation" yaml:"orientation"`

	// Preview typography, pixels.
	PreviewTitleFontSize int `mapstructure:"preview_title_font_size" yaml:"preview_title_font_size"`
	PreviewTextFontSize  int `mapstructure:"preview_text_font_size" yaml:"preview_text_font_size"`
}

// DefaultConfig returns the size-tier defaults for a label size key.
func DefaultConfig(sizeKey string) LayoutConfig {
	if sizeKey == Size2x1.Name {
		return LayoutConfig{
			TitleFont: 4, TextFont: 3,
			TitleMulX: 1, TitleMulY: 2,
			XMargin: 20, TitleY: 6, ItemY: 32, CaseY: 52, BarcodeY: 72,
			LineSpacing:   24,
			TitleMaxChars: 24, ItemMaxChars: 36, CaseMaxChars: 36, MaxTitleLines: 2,
			ShowSeparator: true, SeparatorWidth: 200, SeparatorThickness: 2,
			BarcodeHeight: 40, BarcodeNarrow: 3, BarcodeWide: 6, BarcodeHRI: "B",
			Orientation:          OrientNormal,
			PreviewTitleFontSize: 24, PreviewTextFontSize: 22,
		}
	}
	return LayoutConfig{
		TitleFont: 4, TextFont: 3,
		TitleMulX: 1, TitleMulY: 3,
		XMargin: 40, TitleY: 40, ItemY: 110, CaseY: 160, BarcodeY: 210,
		LineSpacing:   24,
		TitleMaxChars: 24, ItemMaxChars: 36, CaseMaxChars: 36, MaxTitleLines: 2,
		ShowSeparator: true, SeparatorWidth: 200, SeparatorThickness: 2,
		BarcodeHeight: 280, BarcodeNarrow: 3, BarcodeWide: 6, BarcodeHRI: "B",
		Orientation:          OrientNormal,
		PreviewTitleFontSize: 28, PreviewTextFontSize: 32,
	}
}
