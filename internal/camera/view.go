package camera

import (
	"github.com/chewxy/math32"

	"gust/internal/mathutil"
)

// ViewMatrix builds the world-to-view matrix for a camera at position
// looking along direction. The basis is derived directly:
//
//	f = normalize(direction)
//	s = normalize(up × f)
//	u = f × s
//	p = (-position·s, -position·u, -position·f)
//
// Columns 0..2 hold s, u and f, and row 3 holds p, so row vectors
// multiply from the left: position.TransformPoint lands on the origin.
// An up parallel to direction leaves s at zero and the matrix singular.
func ViewMatrix(position, direction, up mathutil.Vec3) mathutil.Mat4 {
	f := direction.Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	p := mathutil.Vec3{
		-position.Dot(s),
		-position.Dot(u),
		-position.Dot(f),
	}

	return mathutil.Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		p[0], p[1], p[2], 1,
	}
}

// Perspective returns the projection matrix for a vertical field of view
// fovY (radians) and aspect = height/width. View-space z is depth; clip
// w takes its value, so points with z <= 0 are behind the camera.
func Perspective(fovY, aspect, near, far float32) mathutil.Mat4 {
	f := 1 / math32.Tan(fovY/2)
	return mathutil.Mat4{
		f * aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (far - near), 1,
		0, 0, -(2 * far * near) / (far - near), 0,
	}
}
