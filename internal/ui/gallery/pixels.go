package gallery

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"
)

// Pixels is a photo sampled for half-block drawing: Cols columns and
// two pixel rows per terminal row.
type Pixels struct {
	Cols int
	Rows int // pixel rows, twice the terminal rows
	px   []color.RGBA
}

// At returns the pixel at column x and pixel row y. Out-of-range
// coordinates return transparent black.
func (p *Pixels) At(x, y int) color.RGBA {
	if p == nil || x < 0 || y < 0 || x >= p.Cols || y >= p.Rows {
		return color.RGBA{}
	}
	return p.px[y*p.Cols+x]
}

// Image returns the pixels as an image, for caching.
func (p *Pixels) Image() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, p.Cols, p.Rows))
	for y := range p.Rows {
		for x := range p.Cols {
			img.SetRGBA(x, y, p.px[y*p.Cols+x])
		}
	}
	return img
}

// Sample center-crops img to the cell area's aspect and resizes it to
// cols x rows*2 pixels.
func Sample(img image.Image, cols, rows int) *Pixels {
	if cols <= 0 || rows <= 0 {
		return &Pixels{}
	}
	h := rows * 2
	cropped := cropToAspect(img, cols, h)
	small := resize.Resize(uint(cols), uint(h), cropped, resize.Bilinear) //nolint:gosec // cell counts are small

	return fromImage(small)
}

func fromImage(img image.Image) *Pixels {
	b := img.Bounds()
	p := &Pixels{Cols: b.Dx(), Rows: b.Dy(), px: make([]color.RGBA, b.Dx()*b.Dy())}
	for y := range p.Rows {
		for x := range p.Cols {
			p.px[y*p.Cols+x] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA) //nolint:forcetypeassert // RGBAModel always returns color.RGBA
		}
	}
	return p
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// cropToAspect returns the largest centered region of img with aspect w:h.
func cropToAspect(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return img
	}
	si, ok := img.(subImager)
	if !ok {
		return img
	}

	cw, ch := b.Dx(), b.Dy()
	if cw*h > ch*w {
		cw = ch * w / h
	} else {
		ch = cw * h / w
	}
	cw, ch = max(cw, 1), max(ch, 1)
	x0 := b.Min.X + (b.Dx()-cw)/2
	y0 := b.Min.Y + (b.Dy()-ch)/2
	return si.SubImage(image.Rect(x0, y0, x0+cw, y0+ch))
}
