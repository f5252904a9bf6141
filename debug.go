package staffmap

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/staffmap/grid"
)

// DebugSVG renders the index as an SVG fragment suitable for pasting
// into the source page: row and column boundary lines, plus one crossed
// rectangle per hitbox tagged with its element id. All coordinates are
// in page units.
func DebugSVG(ix *grid.Index) string {
	var sb strings.Builder
	sb.WriteString(`<g class="staffmap-debug" fill="none">` + "\n")

	rm := ix.RowMarkers()
	for r := 0; r < ix.RowCount(); r++ {
		cm := ix.ColumnMarkers(r)
		top, bottom := rm[r], rm[r+1]
		left, right := cm[0], cm[len(cm)-1]

		fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="blue"/>`+"\n",
			left, top, right, top)
		for _, x := range cm {
			fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="blue"/>`+"\n",
				x, top, x, bottom)
		}
		if r == ix.RowCount()-1 {
			fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="blue"/>`+"\n",
				left, bottom, right, bottom)
		}
	}

	for _, box := range ix.Hitboxes() {
		id := ix.Name(box.ElementID)
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" stroke="red" data-id="%s"/>`+"\n",
			box.X, box.Y, box.Width, box.Height, id)
		fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="red"/>`+"\n",
			box.Left(), box.Top(), box.Right(), box.Bottom())
		fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="red"/>`+"\n",
			box.Left(), box.Bottom(), box.Right(), box.Top())
	}

	for _, ov := range ix.Overlays() {
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" stroke="green" data-id="%s"/>`+"\n",
			ov.X, ov.Y, ov.Width, ov.Height, ov.Description)
	}

	sb.WriteString("</g>\n")
	return sb.String()
}

var (
	debugGridColor    = color.RGBA{0x40, 0x40, 0xff, 0xff}
	debugHitboxColor  = color.RGBA{0xff, 0x30, 0x30, 0xff}
	debugOverlayColor = color.RGBA{0x20, 0xa0, 0x20, 0xff}
)

// DebugImage rasterizes the index onto a white canvas: grid boundaries,
// hitbox outlines, and element id labels. unitsPerPixel converts page
// units to raster pixels and must be positive.
func DebugImage(ix *grid.Index, unitsPerPixel int) *image.RGBA {
	if unitsPerPixel <= 0 {
		unitsPerPixel = 1
	}

	width, height := 1, 1
	rm := ix.RowMarkers()
	if len(rm) > 0 {
		height = rm[len(rm)-1]/unitsPerPixel + 1
	}
	for r := 0; r < ix.RowCount(); r++ {
		cm := ix.ColumnMarkers(r)
		if w := cm[len(cm)-1]/unitsPerPixel + 1; w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	px := func(v int) int { return v / unitsPerPixel }

	for r := 0; r < ix.RowCount(); r++ {
		cm := ix.ColumnMarkers(r)
		top, bottom := px(rm[r]), px(rm[r+1])
		hline(img, px(cm[0]), px(cm[len(cm)-1]), top, debugGridColor)
		if r == ix.RowCount()-1 {
			hline(img, px(cm[0]), px(cm[len(cm)-1]), bottom, debugGridColor)
		}
		for _, x := range cm {
			vline(img, px(x), top, bottom, debugGridColor)
		}
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(debugHitboxColor),
		Face: basicfont.Face7x13,
	}
	for _, box := range ix.Hitboxes() {
		outline(img, px(box.Left()), px(box.Top()), px(box.Right()), px(box.Bottom()), debugHitboxColor)
		drawer.Dot = fixed.P(px(box.Left()), px(box.Top())-2)
		drawer.DrawString(ix.Name(box.ElementID))
	}
	for _, ov := range ix.Overlays() {
		outline(img, px(ov.Left()), px(ov.Top()), px(ov.Right()), px(ov.Bottom()), debugOverlayColor)
	}

	return img
}

// WriteDebugPNG renders the index with DebugImage and encodes it as PNG.
func WriteDebugPNG(w io.Writer, ix *grid.Index, unitsPerPixel int) error {
	if err := png.Encode(w, DebugImage(ix, unitsPerPixel)); err != nil {
		return fmt.Errorf("encoding debug image: %w", err)
	}
	return nil
}

func hline(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

func outline(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	hline(img, x0, x1, y0, c)
	hline(img, x0, x1, y1, c)
	vline(img, x0, y0, y1, c)
	vline(img, x1, y0, y1, c)
}
