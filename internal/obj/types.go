package obj

import "golang.org/x/image/math/f32"

// Corner references one vertex of a face. Indices are zero-based into
// the object's attribute arrays; -1 means the attribute was not given.
type Corner struct {
	V int
	T int
	N int
}

// Group holds the triangles declared under one o/g/usemtl state.
// Polygons with more than three corners are fanned around corner 0.
type Group struct {
	Name      string
	Material  string
	Triangles [][3]Corner
}

// Object holds one parsed wavefront file.
type Object struct {
	Name         string
	MaterialLibs []string
	Positions    []f32.Vec3
	Normals      []f32.Vec3
	UVs          []f32.Vec2
	Groups       []Group
}

// TriangleCount returns the number of triangles across all groups.
func (o *Object) TriangleCount() int {
	n := 0
	for _, g := range o.Groups {
		n += len(g.Triangles)
	}
	return n
}
