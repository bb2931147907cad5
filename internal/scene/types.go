package scene

import (
	"github.com/chewxy/math32"

	"gust/internal/camera"
	"gust/internal/mathutil"
	"gust/internal/mesh"
)

// Object is a renderable scene entry: *Light or *GameObject.
type Object interface {
	objectName() string
}

// Light is a directional light.
type Light struct {
	Name      string
	Direction mathutil.Vec3 // toward the light, unit length
	Color     mathutil.Vec3
	Intensity float32
}

// GameObject is a placed mesh.
type GameObject struct {
	Name      string
	ModelPath string
	Texture   string // empty = untextured
	Mesh      *mesh.Mesh
	Placement Placement
}

func (l *Light) objectName() string      { return l.Name }
func (g *GameObject) objectName() string { return g.Name }

// View describes the camera the scene is rendered from.
type View struct {
	Position  mathutil.Vec3
	Direction mathutil.Vec3
	Up        mathutil.Vec3
	FOV       float32 // vertical, degrees
	Near      float32
	Far       float32
}

// DefaultView starts at (0,0,5) looking down -Z.
func DefaultView() View {
	return View{
		Position:  mathutil.Vec3{0, 0, 5},
		Direction: mathutil.Vec3{0, 0, -1},
		Up:        mathutil.AxisY,
		FOV:       60,
		Near:      0.1,
		Far:       1024,
	}
}

// Matrix returns the view matrix for the pose.
func (v View) Matrix() mathutil.Mat4 {
	return camera.ViewMatrix(v.Position, v.Direction, v.Up)
}

// Projection returns the perspective matrix for a width×height target.
func (v View) Projection(width, height int) mathutil.Mat4 {
	aspect := float32(height) / float32(width)
	return camera.Perspective(mathutil.Deg2Rad(v.FOV), aspect, v.Near, v.Far)
}

// Camera returns a movable camera starting at this pose.
func (v View) Camera() *camera.Camera {
	c := camera.New(v.Position, v.Direction)
	c.Up = v.Up
	return c
}

// DefaultLight is a white directional key light.
func DefaultLight() *Light {
	return &Light{
		Name:      "default",
		Direction: mathutil.Vec3{1.4, 0.4, -0.7}.Normalize(),
		Color:     mathutil.Vec3{1, 1, 1},
		Intensity: 1,
	}
}

// Scene is the set of objects drawn each frame.
type Scene struct {
	View    View
	Objects []Object
}

// Lights returns the scene's lights, or DefaultLight when there are none.
func (s *Scene) Lights() []*Light {
	var out []*Light
	for _, o := range s.Objects {
		if l, ok := o.(*Light); ok {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		out = append(out, DefaultLight())
	}
	return out
}

// GameObjects returns the placed meshes in declaration order.
func (s *Scene) GameObjects() []*GameObject {
	var out []*GameObject
	for _, o := range s.Objects {
		if g, ok := o.(*GameObject); ok {
			out = append(out, g)
		}
	}
	return out
}

// Frame points the view at the bounding sphere of every mesh, from +Z
// so that the whole scene fits the vertical field of view. On a parent
// error, or when there is no geometry, the view is left unchanged.
func (s *Scene) Frame() error {
	worlds, err := WorldMatrices(s.GameObjects())
	if err != nil {
		return err
	}

	inf := math32.Inf(1)
	lo := mathutil.Vec3{inf, inf, inf}
	hi := mathutil.Vec3{-inf, -inf, -inf}
	for i, g := range s.GameObjects() {
		if g.Mesh == nil {
			continue
		}
		for _, tri := range g.Mesh.Triangles {
			for _, v := range tri {
				p := worlds[i].TransformPoint(v.Position)
				for k := 0; k < 3; k++ {
					lo[k] = math32.Min(lo[k], p[k])
					hi[k] = math32.Max(hi[k], p[k])
				}
			}
		}
	}
	if lo[0] > hi[0] {
		return nil
	}

	center := lo.Add(hi).Scale(0.5)
	radius := math32.Max(hi.Sub(center).Len(), 1e-3)
	dist := radius / math32.Sin(mathutil.Deg2Rad(s.View.FOV)/2)

	s.View.Position = center.Add(mathutil.Vec3{0, 0, dist})
	s.View.Direction = mathutil.Vec3{0, 0, -1}
	s.View.Up = mathutil.AxisY
	if s.View.Far < dist+radius {
		s.View.Far = 2 * (dist + radius)
	}
	return nil
}
