package mesh

import (
	"github.com/chewxy/math32"

	"gust/internal/mathutil"
	"gust/internal/obj"
)

// Vertex is one corner of a renderable triangle.
type Vertex struct {
	Position mathutil.Vec3
	Normal   mathutil.Vec3
	UV       [2]float32
}

// Mesh is a triangle list ready for the draw loop.
type Mesh struct {
	Name      string
	Triangles [][3]Vertex
}

// FromWavefront resolves every face of o into vertices. Corners without
// a normal get the face normal; corners without a UV get (0, 0).
func FromWavefront(o *obj.Object) *Mesh {
	m := &Mesh{
		Name:      o.Name,
		Triangles: make([][3]Vertex, 0, o.TriangleCount()),
	}

	for _, g := range o.Groups {
		for _, tri := range g.Triangles {
			var out [3]Vertex
			for k, c := range tri {
				out[k].Position = mathutil.Vec3FromF32(o.Positions[c.V])
				if c.T >= 0 {
					out[k].UV = o.UVs[c.T]
				}
			}

			face := FaceNormal(out[0].Position, out[1].Position, out[2].Position)
			for k, c := range tri {
				if c.N >= 0 {
					out[k].Normal = mathutil.Vec3FromF32(o.Normals[c.N]).Normalize()
				} else {
					out[k].Normal = face
				}
			}
			m.Triangles = append(m.Triangles, out)
		}
	}
	return m
}

// FaceNormal returns the unit normal of the counter-clockwise triangle
// a, b, c, or zero for a degenerate triangle.
func FaceNormal(a, b, c mathutil.Vec3) mathutil.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Flatten returns the triangle list as a flat vertex buffer, three
// vertices per triangle.
func (m *Mesh) Flatten() []Vertex {
	out := make([]Vertex, 0, len(m.Triangles)*3)
	for _, tri := range m.Triangles {
		out = append(out, tri[0], tri[1], tri[2])
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all positions. An
// empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (lo, hi mathutil.Vec3) {
	if len(m.Triangles) == 0 {
		return
	}
	inf := math32.Inf(1)
	lo = mathutil.Vec3{inf, inf, inf}
	hi = mathutil.Vec3{-inf, -inf, -inf}
	for _, tri := range m.Triangles {
		for _, v := range tri {
			for k := 0; k < 3; k++ {
				lo[k] = math32.Min(lo[k], v.Position[k])
				hi[k] = math32.Max(hi[k], v.Position[k])
			}
		}
	}
	return
}

// Center returns the midpoint of the bounding box and the radius of the
// sphere around it that encloses the box.
func (m *Mesh) Center() (mathutil.Vec3, float32) {
	lo, hi := m.Bounds()
	c := lo.Add(hi).Scale(0.5)
	return c, hi.Sub(c).Len()
}
