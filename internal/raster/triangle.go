package raster

import (
	"image"

	"github.com/chewxy/math32"

	"gust/internal/mathutil"
)

// ScreenVertex is a vertex after projection and viewport mapping.
// UOverW/VOverW and InvW are interpolated linearly in screen space for
// perspective-correct texturing.
type ScreenVertex struct {
	X, Y   float32 // pixels, y down
	Z      float32 // NDC depth, -1 near .. 1 far
	InvW   float32
	UOverW float32
	VOverW float32
	Clip   bool // behind the camera
}

// Surface is what a triangle is filled with.
type Surface struct {
	Tex   *image.NRGBA // nil = solid Base color
	Base  [4]uint8
	Shade mathutil.Vec3
}

// RasterizeTriangle fills one projected triangle with z-buffering,
// perspective-correct texture mapping, sRGB decoding, flat shading and
// ACES tone mapping.
//
// This is the HOT PATH: no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, tri [3]ScreenVertex, s *Surface, lc *LightConfig) {
	for _, v := range tri {
		if v.Clip {
			return
		}
	}

	x0, y0, z0 := tri[0].X, tri[0].Y, tri[0].Z
	x1, y1, z1 := tri[1].X, tri[1].Y, tri[1].Z
	x2, y2, z2 := tri[2].X, tri[2].Y, tri[2].Z

	// Bounding box
	minX := int(math32.Floor(math32.Min(math32.Min(x0, x1), x2)))
	maxX := int(math32.Ceil(math32.Max(math32.Max(x0, x1), x2)))
	minY := int(math32.Floor(math32.Min(math32.Min(y0, y1), y2)))
	maxY := int(math32.Ceil(math32.Max(math32.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	shadeR := s.Shade[0] * lc.Exposure
	shadeG := s.Shade[1] * lc.Exposure
	shadeB := s.Shade[2] * lc.Exposure
	invGamma := lc.InvGamma

	// Pixel loop, sampled at pixel centers
	for sy := minY; sy <= maxY; sy++ {
		dsy := float32(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			if z < -1 || z > 1 {
				continue
			}
			zIdx := rowOff + sx
			if z >= fb.Depth[zIdx] {
				continue
			}

			cr, cg, cb, ca := s.Base[0], s.Base[1], s.Base[2], s.Base[3]
			if s.Tex != nil {
				iw := w0*tri[0].InvW + w1*tri[1].InvW + w2*tri[2].InvW
				u := (w0*tri[0].UOverW + w1*tri[1].UOverW + w2*tri[2].UOverW) / iw
				v := (w0*tri[0].VOverW + w1*tri[1].VOverW + w2*tri[2].VOverW) / iw
				cr, cg, cb, ca = SampleTexture(s.Tex, u, v)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.Depth[zIdx] = z

			// sRGB decode, light, tone map, encode
			tr := ACESTonemap(srgbToLinear[cr] * shadeR)
			tg := ACESTonemap(srgbToLinear[cg] * shadeG)
			tb := ACESTonemap(srgbToLinear[cb] * shadeB)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(math32.Pow(tr, invGamma) * 255)
			fb.Color[pxIdx+1] = clamp255(math32.Pow(tg, invGamma) * 255)
			fb.Color[pxIdx+2] = clamp255(math32.Pow(tb, invGamma) * 255)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
