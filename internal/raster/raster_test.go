package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"

	"gust/internal/mathutil"
	"gust/internal/mesh"
	"gust/internal/scene"
	"gust/internal/texture"
)

func flatTri(z float32) [3]ScreenVertex {
	return [3]ScreenVertex{
		{X: 0, Y: 0, Z: z, InvW: 1},
		{X: 16, Y: 0, Z: z, InvW: 1},
		{X: 0, Y: 16, Z: z, InvW: 1},
	}
}

func TestRasterizeTriangle_DepthTest(t *testing.T) {
	lc := NewLightConfig(nil)
	near := &Surface{Base: [4]uint8{255, 0, 0, 255}, Shade: mathutil.Vec3{1, 1, 1}}
	far := &Surface{Base: [4]uint8{0, 0, 255, 255}, Shade: mathutil.Vec3{1, 1, 1}}

	for _, order := range [][2]bool{{true, false}, {false, true}} {
		fb := NewFrameBuffer(16, 16)
		for _, first := range order {
			if first {
				RasterizeTriangle(fb, flatTri(-0.5), near, &lc)
			} else {
				RasterizeTriangle(fb, flatTri(0.5), far, &lc)
			}
		}
		i := (2*16 + 2) * 4
		if fb.Color[i] == 0 || fb.Color[i+2] != 0 {
			t.Errorf("order %v: pixel = %v, want the nearer red triangle", order, fb.Color[i:i+4])
		}
		if d := fb.Depth[2*16+2]; math32.Abs(d+0.5) > 1e-6 {
			t.Errorf("order %v: depth = %v, want -0.5", order, d)
		}
	}
}

func TestRasterizeTriangle_Rejects(t *testing.T) {
	lc := NewLightConfig(nil)
	s := &Surface{Base: [4]uint8{255, 255, 255, 255}, Shade: mathutil.Vec3{1, 1, 1}}

	tests := []struct {
		Name string
		Tri  [3]ScreenVertex
	}{
		{"beyond far plane", flatTri(1.5)},
		{"before near plane", flatTri(-1.5)},
		{"behind camera", func() [3]ScreenVertex { v := flatTri(0); v[1].Clip = true; return v }()},
		{"degenerate", [3]ScreenVertex{{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 9, Y: 9}}},
		{"off screen", [3]ScreenVertex{{X: -40, Y: -40}, {X: -20, Y: -40}, {X: -40, Y: -20}}},
	}

	for _, c := range tests {
		fb := NewFrameBuffer(16, 16)
		RasterizeTriangle(fb, c.Tri, s, &lc)
		for i := 3; i < len(fb.Color); i += 4 {
			if fb.Color[i] != 0 {
				t.Errorf("%s: pixel %d written", c.Name, i/4)
				break
			}
		}
	}
}

func TestRasterizeTriangle_TransparentTexels(t *testing.T) {
	lc := NewLightConfig(nil)
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	s := &Surface{Tex: tex, Shade: mathutil.Vec3{1, 1, 1}}

	fb := NewFrameBuffer(16, 16)
	RasterizeTriangle(fb, flatTri(0), s, &lc)
	if fb.Depth[2*16+2] <= 1 {
		t.Errorf("transparent texel wrote depth %v", fb.Depth[2*16+2])
	}
}

func TestSampleTexture_BottomRowIsVZero(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	tex.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	tex.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})

	if r, _, b, _ := SampleTexture(tex, 0, 0); r != 0 || b != 255 {
		t.Errorf("v=0 sampled (%d,_,%d), want the bottom (blue) row", r, b)
	}
	if r, _, b, _ := SampleTexture(tex, 0, 0.999); r < 250 || b > 5 {
		t.Errorf("v≈1 sampled (%d,_,%d), want the top (red) row", r, b)
	}
}

func TestLightConfig_ComputeShade(t *testing.T) {
	lc := NewLightConfig([]*scene.Light{{Direction: mathutil.AxisZ, Color: mathutil.Vec3{1, 1, 1}, Intensity: 0.5}})

	front := lc.ComputeShade(mathutil.AxisZ)
	back := lc.ComputeShade(mathutil.AxisZ.Neg())
	side := lc.ComputeShade(mathutil.AxisX)

	if front != back {
		t.Errorf("front %v != back %v, faces are two-sided", front, back)
	}
	if !front.ApproxEqual(mathutil.Vec3{0.75, 0.75, 0.75}, 1e-6) {
		t.Errorf("front = %v, want ambient + 0.5", front)
	}
	if side != (mathutil.Vec3{0.25, 0.25, 0.25}) {
		t.Errorf("side = %v, want ambient only", side)
	}
}

func TestFrameBuffer_Clear(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Depth[0] = 0
	fb.Clear(color.NRGBA{1, 2, 3, 4})
	if fb.Depth[0] <= 1 {
		t.Errorf("depth not reset: %v", fb.Depth[0])
	}
	img := fb.Image()
	if c := img.NRGBAAt(1, 1); c != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("pixel = %v, want background", c)
	}
}

func quadScene() *scene.Scene {
	a := mesh.Vertex{Position: mathutil.Vec3{-1, -1, 0}}
	b := mesh.Vertex{Position: mathutil.Vec3{1, -1, 0}}
	c := mesh.Vertex{Position: mathutil.Vec3{1, 1, 0}}
	d := mesh.Vertex{Position: mathutil.Vec3{-1, 1, 0}}
	m := &mesh.Mesh{Name: "quad", Triangles: [][3]mesh.Vertex{{a, b, c}, {a, c, d}}}

	return &scene.Scene{
		View: scene.DefaultView(),
		Objects: []scene.Object{
			&scene.GameObject{Name: "quad", Mesh: m, Placement: scene.DefaultPlacement()},
		},
	}
}

func TestRender_Quad(t *testing.T) {
	s := quadScene()
	f := Frame{
		View:       s.View.Matrix(),
		Projection: s.View.Projection(32, 32),
		Models:     []mathutil.Mat4{mathutil.Mat4Identity()},
	}
	img := Render(s, f, Options{Width: 32, Height: 32})

	if a := img.NRGBAAt(16, 12).A; a != 255 {
		t.Errorf("inside alpha = %d, quad not drawn", a)
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, quad should not reach the corner", a)
	}
}

func TestRender_Textured(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(tex.Pix); i += 4 {
		copy(tex.Pix[i:i+4], []uint8{255, 0, 0, 255})
	}
	path := filepath.Join(t.TempDir(), "red.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, tex); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s := quadScene()
	s.GameObjects()[0].Texture = path
	frame := Frame{
		View:       s.View.Matrix(),
		Projection: s.View.Projection(32, 32),
		Models:     []mathutil.Mat4{mathutil.Mat4Identity()},
	}
	cache := texture.NewCache()
	img := Render(s, frame, Options{Width: 32, Height: 32, TexResolver: cache})

	// The untextured base color is grey, so zero green and blue prove
	// the red texel was sampled.
	c := img.NRGBAAt(16, 12)
	if c.A != 255 || c.R == 0 || c.G != 0 || c.B != 0 {
		t.Errorf("pixel = %v, want the red texel", c)
	}
	if cache.Len() != 1 {
		t.Errorf("cache holds %d textures, want 1", cache.Len())
	}
}

func TestRender_ModelMatrixMovesObject(t *testing.T) {
	s := quadScene()
	f := Frame{
		View:       s.View.Matrix(),
		Projection: s.View.Projection(32, 32),
		// Moving the quad behind the camera must leave the frame empty.
		Models: []mathutil.Mat4{mathutil.Mat4Identity().Translate(mathutil.Vec3{0, 0, 10})},
	}
	img := Render(s, f, Options{Width: 32, Height: 32})

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("pixel %d drawn for an object behind the camera", i/4)
		}
	}
}

func TestProjectVertices(t *testing.T) {
	v := scene.DefaultView()
	mvp := v.Matrix().Mul(v.Projection(64, 32))
	out := ProjectVertices([]mesh.Vertex{
		{Position: mathutil.Vec3{0, 0, 0}},
		{Position: mathutil.Vec3{0, 0, 6}},
	}, mvp, 64, 32)

	if out[0].Clip || out[0].X != 32 || out[0].Y != 16 {
		t.Errorf("origin -> %+v, want the viewport center", out[0])
	}
	if !out[1].Clip {
		t.Errorf("point behind the eye not clipped: %+v", out[1])
	}
}

func BenchmarkRender(b *testing.B) {
	s := quadScene()
	f := Frame{
		View:       s.View.Matrix(),
		Projection: s.View.Projection(256, 256),
		Models:     []mathutil.Mat4{mathutil.Mat4Identity()},
	}
	opt := Options{Width: 256, Height: 256}
	for i := 0; i < b.N; i++ {
		Render(s, f, opt)
	}
}
