package mathutil

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float32

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a × b (right-hand rule).
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Len returns the Euclidean norm.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns v scaled to unit length.
// A zero-length vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// At returns component i (0=x, 1=y, 2=z). Panics if i is out of range.
func (v Vec3) At(i int) float32 {
	checkIndex("Vec3", i, 3)
	return v[i]
}

// Set assigns component i. Panics if i is out of range.
func (v *Vec3) Set(i int, f float32) {
	checkIndex("Vec3", i, 3)
	v[i] = f
}

// Vec4 extends v as a direction (w=0).
func (v Vec3) Vec4() Vec4 {
	return Vec4{v[0], v[1], v[2], 0}
}

// Point extends v as a position (w=1).
func (v Vec3) Point() Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// ApproxEqual reports whether every component differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3(v)
}

func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3(v)
}

func checkIndex(typ string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("mathutil: %s index %d out of range [0,%d)", typ, i, n))
	}
}
