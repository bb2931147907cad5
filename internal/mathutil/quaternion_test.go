package mathutil

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestQuat_Mat4MatchesRotate(t *testing.T) {
	tests := []struct {
		Angle float32
		Axis  Vec3
	}{
		{0, AxisY},
		{math32.Pi / 2, AxisX},
		{1.2, AxisZ},
		{-0.7, Vec3{1, 2, 3}.Normalize()},
	}

	for _, c := range tests {
		q := QuatFromAxisAngle(c.Angle, c.Axis)
		want := Mat4Identity().Rotate(c.Angle, c.Axis)
		if r := q.Mat4(); !r.ApproxEqual(want, 1e-6) {
			t.Errorf("QuatFromAxisAngle(%v, %v).Mat4() =\n%v\nwant\n%v", c.Angle, c.Axis, r, want)
		}

		oracle := Mat4(mgl32.QuatRotate(c.Angle, mgl32.Vec3(c.Axis)).Mat4().Transpose())
		if r := q.Mat4(); !r.ApproxEqual(oracle, 1e-6) {
			t.Errorf("Mat4() disagrees with mgl32 for %v about %v", c.Angle, c.Axis)
		}
	}
}

func TestEulerToQuat(t *testing.T) {
	rx, ry, rz := float32(0.3), float32(-1.1), float32(2.0)

	single := []struct {
		Q, Expected Quat
	}{
		{EulerToQuat(rx, 0, 0), QuatFromAxisAngle(rx, AxisX)},
		{EulerToQuat(0, ry, 0), QuatFromAxisAngle(ry, AxisY)},
		{EulerToQuat(0, 0, rz), QuatFromAxisAngle(rz, AxisZ)},
		{EulerToQuat(0, 0, 0), QuatIdentity()},
	}
	for i, c := range single {
		if !Vec4(c.Q).ApproxEqual(Vec4(c.Expected), 1e-6) {
			t.Errorf("#%d: %v, want %v", i, c.Q, c.Expected)
		}
	}

	qx := QuatFromAxisAngle(rx, AxisX)
	qy := QuatFromAxisAngle(ry, AxisY)
	qz := QuatFromAxisAngle(rz, AxisZ)
	if r, want := EulerToQuat(rx, ry, rz), qz.Mul(qy).Mul(qx); !Vec4(r).ApproxEqual(Vec4(want), 1e-6) {
		t.Errorf("EulerToQuat = %v, want qz×qy×qx = %v", r, want)
	}
}

func TestQuat_Mul(t *testing.T) {
	a := QuatFromAxisAngle(0.4, AxisY)
	b := QuatFromAxisAngle(0.9, AxisY)
	if r, want := a.Mul(b), QuatFromAxisAngle(1.3, AxisY); !Vec4(r).ApproxEqual(Vec4(want), 1e-6) {
		t.Errorf("same-axis product = %v, want %v", r, want)
	}

	// Matrices compose in the same order as the quaternions.
	p := QuatFromAxisAngle(0.5, AxisX)
	q := QuatFromAxisAngle(-1.0, AxisZ)
	if r, want := p.Mul(q).Mat4(), p.Mat4().Mul(q.Mat4()); !r.ApproxEqual(want, 1e-5) {
		t.Errorf("(p×q).Mat4() =\n%v\nwant\n%v", r, want)
	}

	if r := a.Mul(QuatIdentity()); r != a {
		t.Errorf("a × identity = %v", r)
	}
}

func TestQuat_Normalize(t *testing.T) {
	q := Quat{0, 3, 0, 4}.Normalize()
	if !Vec4(q).ApproxEqual(Vec4{0, 0.6, 0, 0.8}, 1e-6) {
		t.Errorf("Normalize = %v", q)
	}
	if r := (Quat{}).Normalize(); r != (Quat{}) {
		t.Errorf("zero Normalize = %v", r)
	}
}
