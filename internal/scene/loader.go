package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gust/internal/camera"
	"gust/internal/mathutil"
	"gust/internal/mesh"
	"gust/internal/obj"
)

// sceneFile matches the JSON schema of a scene file.
type sceneFile struct {
	Camera  *cameraEntry      `json:"camera"`
	Objects []json.RawMessage `json:"objects"`
}

type cameraEntry struct {
	Position  *mathutil.Vec3 `json:"position"`
	Direction *mathutil.Vec3 `json:"direction"`
	Up        *mathutil.Vec3 `json:"up"`
	FOV       *float32       `json:"fov"`
	Near      *float32       `json:"near"`
	Far       *float32       `json:"far"`
	Orbit     *struct {
		Target mathutil.Vec3 `json:"target"`
		Radius float32       `json:"radius"`
		Height float32       `json:"height"`
		Angle  float32       `json:"angle"` // degrees from +Z
	} `json:"orbit"`
}

type objectEntry struct {
	Kind string `json:"kind"` // "light" or "model"
	Name string `json:"name"`

	// light
	Direction *mathutil.Vec3 `json:"direction"`
	Color     *mathutil.Vec3 `json:"color"`
	Intensity *float32       `json:"intensity"`

	// model
	Model    string         `json:"model"`
	Texture  string         `json:"texture"`
	Position *mathutil.Vec3 `json:"position"`
	Scale    *mathutil.Vec3 `json:"scale"`
	Euler    *mathutil.Vec3 `json:"euler"` // degrees, XYZ
	Rotation *struct {
		Angle float32        `json:"angle"` // degrees
		Axis  *mathutil.Vec3 `json:"axis"`
	} `json:"rotation"`
	Forward *mathutil.Vec3 `json:"forward"`
	Up      *mathutil.Vec3 `json:"up"`
	Parent  string         `json:"parent"`
}

// Load reads a JSON scene file and parses every referenced model.
// Model and texture paths are relative to the scene file. A missing
// camera block frames the loaded meshes.
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var f sceneFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	s := &Scene{View: DefaultView()}
	meshes := make(map[string]*mesh.Mesh)

	for i, msg := range f.Objects {
		var e objectEntry
		if err := json.Unmarshal(msg, &e); err != nil {
			return nil, fmt.Errorf("scene: %s: object %d: %w", path, i, err)
		}
		switch e.Kind {
		case "light":
			s.Objects = append(s.Objects, e.light())
		case "model", "":
			g, err := e.gameObject(dir, meshes)
			if err != nil {
				return nil, fmt.Errorf("scene: %s: object %d: %w", path, i, err)
			}
			s.Objects = append(s.Objects, g)
		default:
			return nil, fmt.Errorf("scene: %s: object %d: unknown kind %q", path, i, e.Kind)
		}
	}

	if f.Camera == nil {
		if err := s.Frame(); err != nil {
			return nil, err
		}
	} else {
		if _, err := WorldMatrices(s.GameObjects()); err != nil {
			return nil, err
		}
		f.Camera.apply(&s.View)
	}
	return s, nil
}

// FromModel builds a one-object scene around a single .obj file with
// the camera framed on it.
func FromModel(modelPath, texturePath string) (*Scene, error) {
	o, err := obj.Parse(modelPath)
	if err != nil {
		return nil, err
	}
	name := o.Name
	if name == "" {
		name = filepath.Base(modelPath)
	}
	s := &Scene{
		View: DefaultView(),
		Objects: []Object{&GameObject{
			Name:      name,
			ModelPath: modelPath,
			Texture:   texturePath,
			Mesh:      mesh.FromWavefront(o),
			Placement: DefaultPlacement(),
		}},
	}
	if err := s.Frame(); err != nil {
		return nil, err
	}
	return s, nil
}

// apply overrides v with the entries that are set. An orbit places the
// camera first; explicit position and direction still win.
func (c *cameraEntry) apply(v *View) {
	if o := c.Orbit; o != nil {
		cam := camera.Orbit(o.Target, o.Radius, o.Height, mathutil.Deg2Rad(o.Angle))
		v.Position = cam.Position
		v.Direction = cam.Direction
	}
	if c.Position != nil {
		v.Position = *c.Position
	}
	if c.Direction != nil {
		v.Direction = *c.Direction
	}
	if c.Up != nil {
		v.Up = *c.Up
	}
	if c.FOV != nil {
		v.FOV = *c.FOV
	}
	if c.Near != nil {
		v.Near = *c.Near
	}
	if c.Far != nil {
		v.Far = *c.Far
	}
}

func (e *objectEntry) light() *Light {
	l := DefaultLight()
	if e.Name != "" {
		l.Name = e.Name
	}
	if e.Direction != nil {
		l.Direction = e.Direction.Normalize()
	}
	if e.Color != nil {
		l.Color = *e.Color
	}
	if e.Intensity != nil {
		l.Intensity = *e.Intensity
	}
	return l
}

func (e *objectEntry) gameObject(dir string, cache map[string]*mesh.Mesh) (*GameObject, error) {
	if e.Model == "" {
		return nil, fmt.Errorf("model path missing")
	}

	p := DefaultPlacement()
	if e.Position != nil {
		p.Position = *e.Position
	}
	if e.Scale != nil {
		p.Scale = *e.Scale
	}
	if e.Euler != nil {
		p.Euler = mathutil.EulerToQuat(
			mathutil.Deg2Rad(e.Euler[0]),
			mathutil.Deg2Rad(e.Euler[1]),
			mathutil.Deg2Rad(e.Euler[2]),
		)
	}
	if e.Rotation != nil {
		p.Angle = mathutil.Deg2Rad(e.Rotation.Angle)
		if e.Rotation.Axis != nil {
			// The rotation builder expects a unit axis.
			p.Axis = e.Rotation.Axis.Normalize()
		}
	}
	if e.Forward != nil {
		p.Forward = *e.Forward
	}
	if e.Up != nil {
		p.Up = *e.Up
	}
	p.Parent = e.Parent

	modelPath := resolve(dir, e.Model)
	m, ok := cache[modelPath]
	if !ok {
		o, err := obj.Parse(modelPath)
		if err != nil {
			return nil, err
		}
		m = mesh.FromWavefront(o)
		cache[modelPath] = m
	}

	name := e.Name
	if name == "" {
		name = m.Name
	}

	g := &GameObject{
		Name:      name,
		ModelPath: modelPath,
		Mesh:      m,
		Placement: p,
	}
	if e.Texture != "" {
		g.Texture = resolve(dir, e.Texture)
	}
	return g, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
