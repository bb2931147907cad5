package scene

import (
	"fmt"

	"gust/internal/mathutil"
)

// Placement positions a GameObject relative to its parent.
type Placement struct {
	Position mathutil.Vec3
	Scale    mathutil.Vec3
	Euler    mathutil.Quat // orientation, identity by default
	Angle    float32       // radians about Axis
	Axis     mathutil.Vec3
	Forward  mathutil.Vec3 // zero = no alignment
	Up       mathutil.Vec3
	Parent   string
}

// DefaultPlacement is identity: unit scale, no rotation, at the origin.
func DefaultPlacement() Placement {
	return Placement{
		Scale: mathutil.Vec3{1, 1, 1},
		Euler: mathutil.QuatIdentity(),
		Axis:  mathutil.AxisY,
		Up:    mathutil.AxisY,
	}
}

// Matrix returns the local model matrix. Applied to row vectors it
// scales, applies the Euler orientation and the axis rotation, aligns
// to Forward/Up when set, then translates.
func (p Placement) Matrix() mathutil.Mat4 {
	m := mathutil.Mat4Identity().Scale(p.Scale).Mul(p.Euler.Mat4())
	if p.Angle != 0 {
		m = m.Rotate(p.Angle, p.Axis)
	}
	if p.Forward != mathutil.Origin {
		m = m.RotateWithDirectionAndUp(p.Forward, p.Up)
	}
	return m.Translate(p.Position)
}

// WorldMatrices chains each object's local matrix with its parent's:
// world = local × parentWorld. A parent must be declared before its
// children.
func WorldMatrices(objs []*GameObject) ([]mathutil.Mat4, error) {
	worlds := make([]mathutil.Mat4, len(objs))
	index := make(map[string]int, len(objs))

	for i, o := range objs {
		local := o.Placement.Matrix()
		if o.Placement.Parent == "" {
			worlds[i] = local
		} else {
			pi, ok := index[o.Placement.Parent]
			if !ok {
				return nil, fmt.Errorf("scene: %s: parent %q not declared before it", o.Name, o.Placement.Parent)
			}
			worlds[i] = local.Mul(worlds[pi])
		}
		if o.Name != "" {
			index[o.Name] = i
		}
	}
	return worlds, nil
}
