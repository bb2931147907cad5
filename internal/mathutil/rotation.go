package mathutil

import "github.com/chewxy/math32"

// The builders below never modify m. Each one creates its canonical
// transform B and returns m × B, so the new transform is applied in the
// frame m already describes. Chains read left to right:
//
//	Mat4Identity().Scale(s).Rotate(a, axis).Translate(t) == S × R × T

// Scale returns m × diag(v.x, v.y, v.z, 1).
func (m Mat4) Scale(v Vec3) Mat4 {
	s := Mat4Identity()
	s[0] = v[0]
	s[5] = v[1]
	s[10] = v[2]
	return m.Mul(s)
}

// Rotate returns m × R where R is the axis-angle (Rodrigues) rotation by
// angle radians about axis. The axis must already be unit length; it is
// not normalized here, so a scaled axis yields a scaled matrix.
func (m Mat4) Rotate(angle float32, axis Vec3) Mat4 {
	s, c := math32.Sincos(angle)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]

	r := Mat4Identity()
	r[0] = t*x*x + c
	r[1] = t*x*y - s*z
	r[2] = t*x*z + s*y
	r[4] = t*x*y + s*z
	r[5] = t*y*y + c
	r[6] = t*y*z - s*x
	r[8] = t*x*z - s*y
	r[9] = t*y*z + s*x
	r[10] = t*z*z + c
	return m.Mul(r)
}

// RotateWithDirectionAndUp returns m × B where B's columns are
// right, forward, up' and (0,0,0,1):
//
//	forward = normalize(forward)
//	right   = normalize(up × forward)
//	up'     = normalize(forward × right)
//
// Forward goes in column 1 and the recomputed up in column 2. Local x
// is right, local y forward and local z up.
func (m Mat4) RotateWithDirectionAndUp(forward, up Vec3) Mat4 {
	f := forward.Normalize()
	right := up.Cross(f).Normalize()
	u := f.Cross(right).Normalize()

	b := Mat4FromColumns(right.Vec4(), f.Vec4(), u.Vec4(), Vec4{0, 0, 0, 1})
	return m.Mul(b)
}

// Translate returns m × T where T is identity with v in row 3.
func (m Mat4) Translate(v Vec3) Mat4 {
	t := Mat4Identity()
	t[12] = v[0]
	t[13] = v[1]
	t[14] = v[2]
	return m.Mul(t)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}
