package raster

import (
	"image"
	"image/color"

	"github.com/dgravesa/go-parallel/parallel"

	"gust/internal/mathutil"
	"gust/internal/mesh"
	"gust/internal/scene"
	"gust/internal/texture"
)

// DefaultBase is the color of untextured meshes.
var DefaultBase = [4]uint8{160, 160, 170, 255}

// Frame is everything one draw call needs besides the scene geometry.
type Frame struct {
	View       mathutil.Mat4
	Projection mathutil.Mat4
	Models     []mathutil.Mat4 // world matrix per scene.GameObjects() entry
}

// Options controls the render target.
type Options struct {
	Width       int
	Height      int
	Background  color.NRGBA
	TexResolver texture.Resolver
}

// Render draws every game object of s with the frame's matrices.
// Vertices are taken through clip = (p,1) · Model · View · Projection.
func Render(s *scene.Scene, f Frame, opt Options) *image.NRGBA {
	fb := NewFrameBuffer(opt.Width, opt.Height)
	fb.Clear(opt.Background)
	lc := NewLightConfig(s.Lights())
	viewProj := f.View.Mul(f.Projection)

	for i, g := range s.GameObjects() {
		if g.Mesh == nil || len(g.Mesh.Triangles) == 0 || i >= len(f.Models) {
			continue
		}
		model := f.Models[i]

		surf := Surface{Base: DefaultBase}
		if g.Texture != "" && opt.TexResolver != nil {
			surf.Tex = opt.TexResolver.Resolve(g.Texture)
		}

		verts := g.Mesh.Flatten()
		screen := ProjectVertices(verts, model.Mul(viewProj), opt.Width, opt.Height)

		for t := 0; t+2 < len(verts); t += 3 {
			normal := mesh.FaceNormal(
				model.TransformPoint(verts[t].Position),
				model.TransformPoint(verts[t+1].Position),
				model.TransformPoint(verts[t+2].Position),
			)
			surf.Shade = lc.ComputeShade(normal)
			RasterizeTriangle(fb, [3]ScreenVertex{screen[t], screen[t+1], screen[t+2]}, &surf, &lc)
		}
	}

	return fb.Image()
}

// ProjectVertices transforms vertices by mvp and maps them to a w×h
// viewport. Runs in parallel over the vertex buffer.
func ProjectVertices(verts []mesh.Vertex, mvp mathutil.Mat4, w, h int) []ScreenVertex {
	out := make([]ScreenVertex, len(verts))
	fw, fh := float32(w), float32(h)

	parallel.For(len(verts), func(i, _ int) {
		v := verts[i]
		clip := mvp.TransformVec4(v.Position.Point())
		if clip[3] <= 1e-6 {
			out[i] = ScreenVertex{Clip: true}
			return
		}
		invW := 1 / clip[3]
		out[i] = ScreenVertex{
			X:      (clip[0]*invW + 1) * 0.5 * fw,
			Y:      (1 - clip[1]*invW) * 0.5 * fh,
			Z:      clip[2] * invW,
			InvW:   invW,
			UOverW: v.UV[0] * invW,
			VOverW: v.UV[1] * invW,
		}
	})
	return out
}
