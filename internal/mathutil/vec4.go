package mathutil

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec4 is a homogeneous 4-component vector. w=1 marks a position that
// translation applies to, w=0 a direction.
type Vec4 [4]float32

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (a Vec4) Dot(b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Cross is the 3D cross product of the xyz parts. The result is a
// direction: w is always 0, whatever the inputs carry.
func (a Vec4) Cross(b Vec4) Vec4 {
	return Vec4{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}

// Len returns the 4D Euclidean norm, w included.
func (v Vec4) Len() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// Normalize returns v scaled to unit 4D length.
// A zero-length vector is returned unchanged.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec4{v[0] / l, v[1] / l, v[2] / l, v[3] / l}
}

// At returns component i (0=x, 1=y, 2=z, 3=w). Panics if i is out of range.
func (v Vec4) At(i int) float32 {
	checkIndex("Vec4", i, 4)
	return v[i]
}

// Set assigns component i. Panics if i is out of range.
func (v *Vec4) Set(i int, f float32) {
	checkIndex("Vec4", i, 4)
	v[i] = f
}

// Vec3 drops w without dividing by it.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (a Vec4) ApproxEqual(b Vec4, eps float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4(v)
}
