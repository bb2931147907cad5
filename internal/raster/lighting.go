package raster

import (
	"math"

	"github.com/chewxy/math32"

	"gust/internal/mathutil"
	"gust/internal/scene"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	Lights   []DirLight
	Ambient  float32
	Direct   float32
	Exposure float32
	InvGamma float32
}

// DirLight is a scene light reduced to what the shader needs.
type DirLight struct {
	Dir   mathutil.Vec3 // unit, toward the light
	Color mathutil.Vec3 // premultiplied by intensity
}

// NewLightConfig builds the lighting for a frame from the scene lights.
func NewLightConfig(lights []*scene.Light) LightConfig {
	lc := LightConfig{
		Ambient:  0.25,
		Direct:   1.0,
		Exposure: 1.05,
		InvGamma: 1 / 2.2,
	}
	for _, l := range lights {
		lc.Lights = append(lc.Lights, DirLight{
			Dir:   l.Direction.Normalize(),
			Color: l.Color.Scale(l.Intensity),
		})
	}
	return lc
}

// ComputeShade returns the per-channel lighting multiplier for a world
// space face normal. Faces are lit from both sides.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) mathutil.Vec3 {
	shade := mathutil.Vec3{lc.Ambient, lc.Ambient, lc.Ambient}
	for _, l := range lc.Lights {
		ndl := math32.Abs(normal.Dot(l.Dir))
		shade = shade.Add(l.Color.Scale(ndl * lc.Direct))
	}
	return shade
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float32

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = float32(math.Pow(float64(i)/255.0, 2.2))
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float32) float32 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
