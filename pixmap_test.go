package tinyskia

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/draw"
)

func TestNewPixmap(t *testing.T) {
	pm, err := NewPixmap(3, 2)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}
	if pm.Width() != 3 || pm.Height() != 2 || pm.Stride() != 12 {
		t.Errorf("got %dx%d stride %d, want 3x2 stride 12", pm.Width(), pm.Height(), pm.Stride())
	}
	if len(pm.Data()) != 24 {
		t.Errorf("len(Data()) = %d, want 24", len(pm.Data()))
	}
	if !pm.IsValid() {
		t.Error("new pixmap should be valid")
	}
	if got := pm.Pixel(1, 1); got != Transparent {
		t.Errorf("new pixmap pixel = %v, want transparent", got)
	}
}

func TestNewPixmapErrors(t *testing.T) {
	tests := []struct {
		name          string
		w, h, stride  int
		useStride     bool
	}{
		{"zero width", 0, 4, 0, false},
		{"zero height", 4, 0, 0, false},
		{"negative", -1, 4, 0, false},
		{"short stride", 2, 2, 7, true},
		{"overflow", 1 << 40, 1 << 40, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.useStride {
				_, err = NewPixmapWithStride(tt.w, tt.h, tt.stride)
			} else {
				_, err = NewPixmap(tt.w, tt.h)
			}
			if err != ErrInvalidDimensions {
				t.Errorf("error = %v, want %v", err, ErrInvalidDimensions)
			}
		})
	}
}

func TestPixmapStride(t *testing.T) {
	pm, err := NewPixmapWithStride(2, 3, 12)
	if err != nil {
		t.Fatalf("NewPixmapWithStride() error = %v", err)
	}
	if len(pm.Row(1)) != 8 {
		t.Errorf("len(Row(1)) = %d, want 8", len(pm.Row(1)))
	}

	pm.SetPixel(1, 2, RGB8(1, 2, 3))
	if got := pm.Data()[2*12+4 : 2*12+8]; got[0] != 1 || got[1] != 2 || got[2] != 3 || got[3] != 255 {
		t.Errorf("raw pixel = %v, want [1 2 3 255]", got)
	}

	pm.Fill(White)
	// Row padding is never written.
	if pm.Data()[8] != 0 || pm.Data()[11] != 0 {
		t.Error("Fill wrote into row padding")
	}
}

func TestPixmapPixelOutOfRange(t *testing.T) {
	pm, err := NewPixmap(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(2, 0, White)
	pm.SetPixel(0, 5, White)
	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("out-of-range SetPixel wrote data")
		}
	}
	if got := pm.Pixel(7, 7); got != Transparent {
		t.Errorf("Pixel out of range = %v, want transparent", got)
	}
}

func TestPixmapClone(t *testing.T) {
	pm, err := NewPixmap(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	pm.Fill(RGB8(9, 8, 7))
	c := pm.Clone()
	c.SetPixel(0, 0, White)

	if pm.Pixel(0, 0) != RGB8(9, 8, 7) {
		t.Error("Clone shares pixel data")
	}
	if c.Pixel(1, 1) != RGB8(9, 8, 7) {
		t.Error("Clone lost pixel data")
	}
}

func TestPixmapFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.SetRGBA(10, 10, color.RGBA{R: 128, A: 128})
	src.SetRGBA(11, 10, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	pm, err := PixmapFromImage(src)
	if err != nil {
		t.Fatalf("PixmapFromImage() error = %v", err)
	}
	if pm.Width() != 2 || pm.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", pm.Width(), pm.Height())
	}
	// Premultiplied input is stored straight.
	if got := pm.Pixel(0, 0); got != RGBA8(255, 0, 0, 128) {
		t.Errorf("pixel 0 = %v, want straight red at half alpha", got)
	}
	if got := pm.Pixel(1, 0); got != RGB8(10, 20, 30) {
		t.Errorf("pixel 1 = %v, want (10, 20, 30)", got)
	}

	if _, err := PixmapFromImage(image.NewRGBA(image.Rectangle{})); err != ErrInvalidDimensions {
		t.Errorf("empty image error = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestPixmapToNRGBA(t *testing.T) {
	pm, err := NewPixmapWithStride(2, 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	pm.SetPixel(1, 1, RGBA8(40, 50, 60, 70))

	img := pm.ToNRGBA()
	if img.Stride != 8 {
		t.Errorf("Stride = %d, want 8", img.Stride)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 40, G: 50, B: 60, A: 70}) {
		t.Errorf("NRGBAAt(1, 1) = %v", got)
	}
}

func TestPixmapDrawImage(t *testing.T) {
	pm, err := NewPixmap(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	var _ draw.Image = pm
	fill := image.NewUniform(color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	draw.Draw(pm, image.Rect(1, 1, 3, 3), fill, image.Point{}, draw.Src)

	if got := pm.Pixel(2, 2); got != RGB8(200, 100, 50) {
		t.Errorf("Pixel(2, 2) = %v, want (200, 100, 50)", got)
	}
	if got := pm.Pixel(0, 0); got != Transparent {
		t.Errorf("Pixel(0, 0) = %v, want transparent", got)
	}
	if got := pm.At(2, 2).(color.NRGBA); got.R != 200 {
		t.Errorf("At(2, 2) = %v", got)
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel should be NRGBA")
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm, err := NewPixmap(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	pm.Fill(RGBA8(10, 200, 30, 128))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	got := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if got != (color.NRGBA{R: 10, G: 200, B: 30, A: 128}) {
		t.Errorf("decoded pixel = %v", got)
	}

	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
