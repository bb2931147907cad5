package mathutil

import "github.com/chewxy/math32"

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float32

func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// EulerToQuat converts Euler XYZ (radians) to the quaternion qz × qy × qx.
func EulerToQuat(rx, ry, rz float32) Quat {
	sx, cx := math32.Sincos(rx * 0.5)
	sy, cy := math32.Sincos(ry * 0.5)
	sz, cz := math32.Sincos(rz * 0.5)

	return Quat{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// QuatFromAxisAngle returns the rotation by angle radians about a unit axis.
func QuatFromAxisAngle(angle float32, axis Vec3) Quat {
	s, c := math32.Sincos(angle * 0.5)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// Mul returns the Hamilton product q × r, the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		q[3]*r[0] + q[0]*r[3] + q[1]*r[2] - q[2]*r[1],
		q[3]*r[1] - q[0]*r[2] + q[1]*r[3] + q[2]*r[0],
		q[3]*r[2] + q[0]*r[1] - q[1]*r[0] + q[2]*r[3],
		q[3]*r[3] - q[0]*r[0] - q[1]*r[1] - q[2]*r[2],
	}
}

// Normalize returns q scaled to unit length; zero is returned unchanged.
func (q Quat) Normalize() Quat {
	l := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if l == 0 {
		return q
	}
	return Quat{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// Mat4 converts a unit quaternion to a rotation matrix laid out like
// Rotate's: QuatFromAxisAngle(a, axis).Mat4() == Mat4Identity().Rotate(a, axis).
func (q Quat) Mat4() Mat4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0,
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0,
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
