// Package preview renders a raster image of a label at full device-dot
// resolution, mirroring the layout decisions of the command generators
// so the screen matches the print.
package preview

import (
	"image"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"printlabel/internal/label"
)

var previewFont = func() *truetype.Font {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("preview: parse embedded font: " + err.Error())
	}
	return f
}()

// tier is the preview's own typography per label height class. The
// printed layout is driven by LayoutConfig; the preview deliberately
// carries fixed defaults so it renders without a settings store.
type tier struct {
	titleSize float64
	textSize  float64
	hriSize   float64

	xMargin     int
	titleY      int
	itemY       int
	caseY       int
	barcodeY    int
	lineSpacing int

	titleMaxChars int
	maxTitleLines int

	separatorWidth     int
	separatorThickness int

	barcodeHeight int
	moduleWidth   int
}

var (
	tier2x1 = tier{
		titleSize: 28, textSize: 22, hriSize: 14,
		xMargin: 20, titleY: 8, itemY: 40, caseY: 66, barcodeY: 88,
		lineSpacing:   32,
		titleMaxChars: 24, maxTitleLines: 2,
		separatorWidth: 200, separatorThickness: 2,
		barcodeHeight: 60, moduleWidth: 2,
	}
	tier4x6 = tier{
		titleSize: 44, textSize: 32, hriSize: 20,
		xMargin: 40, titleY: 40, itemY: 110, caseY: 160, barcodeY: 210,
		lineSpacing:   48,
		titleMaxChars: 24, maxTitleLines: 2,
		separatorWidth: 200, separatorThickness: 2,
		barcodeHeight: 280, moduleWidth: 2,
	}
)

func tierFor(size label.Size) tier {
	if size.HeightDots <= label.DPI {
		return tier2x1
	}
	return tier4x6
}

// Render draws the label preview as a grayscale raster matching the
// geometry's dot dimensions. It never fails: an invalid UPC or an
// absent symbol renderer leaves a placeholder where the barcode would
// be.
func Render(f label.Fields, size label.Size, symbols Symbol) *image.Gray {
	t := tierFor(size)
	img := image.NewGray(image.Rect(0, 0, size.WidthDots, size.HeightDots))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// Same wrap and cascade rules as the command generators.
	lines, _ := label.Wrap(f.Title, t.titleMaxChars, t.maxTitleLines)
	shift := 0
	if len(lines) > 1 {
		shift = (len(lines) - 1) * t.lineSpacing
	}
	for i, line := range lines {
		drawString(img, line, t.xMargin, t.titleY+i*t.lineSpacing, t.titleSize)
	}
	if len(lines) > 0 {
		sepY := t.titleY + len(lines)*t.lineSpacing
		fillRect(img, t.xMargin, sepY, t.separatorWidth, t.separatorThickness)
		shift += t.lineSpacing
	}

	drawString(img, "Item: "+label.Truncate(f.ItemNumber, 36), t.xMargin, t.itemY+shift, t.textSize)
	if f.Casepack != "" {
		drawString(img, "Casepack: "+label.Truncate(f.Casepack, 36), t.xMargin, t.caseY+shift, t.textSize)
	}

	drawBarcode(img, f.UPC, t, shift, symbols)
	return img
}

func drawBarcode(img *image.Gray, upc string, t tier, shift int, symbols Symbol) {
	payload, ok := label.NormalizeUPC(upc)
	if !ok || symbols == nil {
		drawString(img, "UPC preview unavailable", t.xMargin, t.barcodeY+shift, t.hriSize)
		return
	}
	sym, err := symbols.RenderUPCA(payload, t.moduleWidth, t.barcodeHeight)
	if err != nil {
		drawString(img, "UPC preview unavailable", t.xMargin, t.barcodeY+shift, t.hriSize)
		return
	}

	// Downscale only; a symbol that already fits is pasted as is, with
	// one module width of quiet zone provided by the margin.
	maxW := img.Bounds().Dx() - 2*t.xMargin
	if maxW < 10 {
		maxW = 10
	}
	if sym.Bounds().Dx() > maxW {
		scale := float64(maxW) / float64(sym.Bounds().Dx())
		sym = resize(sym, maxW, int(float64(sym.Bounds().Dy())*scale))
	}
	pos := image.Pt(t.xMargin, t.barcodeY+shift)
	draw.Draw(img, image.Rectangle{Min: pos, Max: pos.Add(sym.Bounds().Size())}, sym, sym.Bounds().Min, draw.Src)

	// Human-readable interpretation under the symbol.
	drawString(img, payload, t.xMargin, t.barcodeY+shift+sym.Bounds().Dy()+4, t.hriSize)
}

// drawString renders one line of text with its top-left corner at
// (x, y).
func drawString(img *image.Gray, s string, x, y int, size float64) {
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(previewFont)
	c.SetFontSize(size)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	c.SetHinting(font.HintingFull)

	face := truetype.NewFace(previewFont, &truetype.Options{Size: size, DPI: 72})
	ascent := face.Metrics().Ascent.Ceil()
	// DrawString failures (e.g. clip exhausted) only lose the line.
	c.DrawString(s, freetype.Pt(x, y+ascent))
}

func fillRect(img *image.Gray, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	draw.Draw(img, r, image.Black, image.Point{}, draw.Src)
}

// resize is a nearest-neighbor rescale, good enough for thermal-print
// preview work.
func resize(src image.Image, w, h int) image.Image {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := bounds.Min.X + x*srcW/w
			sy := bounds.Min.Y + y*srcH/h
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}

// Rotate reorients a rendered preview for rotated label stock.
func Rotate(src image.Image, o label.Orientation) image.Image {
	switch o {
	case label.OrientRotated90:
		return rotate90CW(src)
	case label.OrientRotated180:
		return rotate90CW(rotate90CW(src))
	case label.OrientRotated270:
		return rotate90CCW(src)
	default:
		return src
	}
}

func rotate90CW(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(h-1-y, x, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return dst
}

func rotate90CCW(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(y, w-1-x, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return dst
}
