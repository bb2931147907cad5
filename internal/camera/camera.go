package camera

import (
	"github.com/chewxy/math32"

	"gust/internal/mathutil"
)

// Default camera tuning.
const (
	LookSensitivity = 0.0005
	MoveStep        = 0.1
)

// Movement is a single-step camera translation request.
type Movement int

const (
	Forward Movement = iota
	Back
	Left
	Right
	Up
	Down
)

// Camera holds the pose the view matrix is rebuilt from each frame.
type Camera struct {
	Position  mathutil.Vec3
	Direction mathutil.Vec3
	Up        mathutil.Vec3
}

// New returns a camera at position looking along direction, Y-up.
func New(position, direction mathutil.Vec3) *Camera {
	return &Camera{
		Position:  position,
		Direction: direction.Normalize(),
		Up:        mathutil.AxisY,
	}
}

// View returns the current view matrix.
func (c *Camera) View() mathutil.Mat4 {
	return ViewMatrix(c.Position, c.Direction, c.Up)
}

// Look turns the camera by a pointer delta in pixels, as an interactive
// host feeds it from mouse motion. The delta is subtracted from the
// direction's x and y, then the direction is renormalized.
func (c *Camera) Look(dx, dy float32) {
	d := c.Direction
	d[0] -= dx * LookSensitivity
	d[1] -= dy * LookSensitivity
	c.Direction = d.Normalize()
}

// Move steps the camera by one key press. Forward, Back, Left and Right
// walk in the ground plane along the direction's xz projection; Up and
// Down move along world Y.
func (c *Camera) Move(m Movement) {
	g := planar(c.Direction)
	switch m {
	case Forward:
		c.Position[0] += g[0] * MoveStep
		c.Position[2] += g[1] * MoveStep
	case Back:
		c.Position[0] -= g[0] * MoveStep
		c.Position[2] -= g[1] * MoveStep
	case Left:
		c.Position[0] -= g[1] * MoveStep
		c.Position[2] += g[0] * MoveStep
	case Right:
		c.Position[0] += g[1] * MoveStep
		c.Position[2] -= g[0] * MoveStep
	case Up:
		c.Position[1] += MoveStep
	case Down:
		c.Position[1] -= MoveStep
	}
}

// planar returns the unit (x, z) heading, or zero when looking straight
// up or down.
func planar(d mathutil.Vec3) [2]float32 {
	l := math32.Sqrt(d[0]*d[0] + d[2]*d[2])
	if l == 0 {
		return [2]float32{}
	}
	return [2]float32{d[0] / l, d[2] / l}
}

// Orbit places the camera on a circle of radius around target, height
// above it, at angle radians from +Z, looking at target.
func Orbit(target mathutil.Vec3, radius, height, angle float32) *Camera {
	s, co := math32.Sincos(angle)
	pos := target.Add(mathutil.Vec3{radius * s, height, radius * co})
	return New(pos, target.Sub(pos))
}
