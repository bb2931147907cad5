package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func TestDownsample(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{200, 40, 10, 255})
		}
	}

	dst := Downsample(src, 4, 2)
	if b := dst.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 4x2", b)
	}
	c := dst.NRGBAAt(1, 1)
	if far(c.R, 200) || far(c.G, 40) || far(c.B, 10) || c.A != 255 {
		t.Errorf("flat color changed to %v", c)
	}
}

func TestDownsample_NoHalo(t *testing.T) {
	// Opaque white left half, fully transparent black right half.
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	dst := Downsample(src, 4, 4)
	for x := 0; x < 4; x++ {
		c := dst.NRGBAAt(x, 2)
		if c.A > 1 && c.R < 250 {
			t.Errorf("x=%d: %v, transparent pixels darkened the edge", x, c)
		}
	}
}

func TestDownsample_SmallerIsUnchanged(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if dst := Downsample(src, 8, 8); dst != src {
		t.Error("image at or below target size was copied")
	}
}

// far reports whether a is more than one step away from b.
func far(a, b uint8) bool {
	d := int(a) - int(b)
	return d < -1 || d > 1
}
