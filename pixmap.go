package tinyskia

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap is a rectangular straight-alpha RGBA buffer, 4 bytes per pixel.
// Rows are stride bytes apart; stride is at least width*4.
type Pixmap struct {
	width  int
	height int
	stride int
	data   []uint8
}

// NewPixmap creates a transparent pixmap with a tightly packed stride.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || width > math.MaxInt/4 {
		return nil, ErrInvalidDimensions
	}
	return NewPixmapWithStride(width, height, width*4)
}

// NewPixmapWithStride creates a transparent pixmap whose rows are stride
// bytes apart. It fails when a dimension is not positive, stride is smaller
// than width*4, or the buffer size overflows.
func NewPixmapWithStride(width, height, stride int) (*Pixmap, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/4 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*4 || height > math.MaxInt/stride {
		return nil, ErrInvalidDimensions
	}
	return &Pixmap{
		width:  width,
		height: height,
		stride: stride,
		data:   make([]uint8, stride*height),
	}, nil
}

// PixmapFromImage converts any image into a new pixmap with straight alpha.
func PixmapFromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	pm, err := NewPixmap(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(pm.nrgba(), pm.Bounds(), img, b.Min, draw.Src)
	return pm, nil
}

// IsValid reports whether the pixmap has positive dimensions and a buffer
// covering them.
func (p *Pixmap) IsValid() bool {
	return p != nil && p.width > 0 && p.height > 0 && p.stride >= p.width*4 &&
		len(p.data) >= p.stride*p.height
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the distance in bytes between rows.
func (p *Pixmap) Stride() int {
	return p.stride
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Row returns the width*4 bytes of row y.
func (p *Pixmap) Row(y int) []uint8 {
	off := y * p.stride
	return p.data[off : off+p.width*4 : off+p.width*4]
}

// Pixel returns the color at (x, y), or Transparent outside the pixmap.
func (p *Pixmap) Pixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := y*p.stride + x*4
	return RGBA8(p.data[i], p.data[i+1], p.data[i+2], p.data[i+3])
}

// SetPixel stores c at (x, y) without blending. Out-of-range
// coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	storePixel(p.data[y*p.stride+x*4:], c)
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c Color) {
	for y := 0; y < p.height; y++ {
		row := p.Row(y)
		for i := 0; i < len(row); i += 4 {
			storePixel(row[i:], c)
		}
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := *p
	c.data = append([]uint8(nil), p.data...)
	return &c
}

// nrgba returns an image.NRGBA view sharing the pixel buffer.
func (p *Pixmap) nrgba() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.stride,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToNRGBA copies the pixmap into a new image.NRGBA.
func (p *Pixmap) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		copy(img.Pix[y*img.Stride:], p.Row(y))
	}
	return img
}

// EncodePNG writes the pixmap as a PNG image.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.nrgba())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.Pixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set implements the draw.Image interface, so golang.org/x/image/draw can
// render directly into a pixmap.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

func loadPixel(b []uint8) Color {
	return RGBA8(b[0], b[1], b[2], b[3])
}

func storePixel(b []uint8, c Color) {
	b[0], b[1], b[2], b[3] = c.R, c.G, c.B, c.A
}
