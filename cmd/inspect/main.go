package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gust/internal/camera"
	"gust/internal/mesh"
	"gust/internal/obj"
	"gust/internal/scene"
)

func main() {
	width := flag.Int("width", 512, "Target width for the projection matrix")
	height := flag.Int("height", 512, "Target height for the projection matrix")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-width N] [-height N] model.obj|scene.json")
		os.Exit(2)
	}
	path := flag.Arg(0)

	var s *scene.Scene
	var err error
	if strings.EqualFold(filepath.Ext(path), ".obj") {
		var o *obj.Object
		o, err = obj.Parse(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		printObject(o)
		s, err = scene.FromModel(path, "")
	} else {
		s, err = scene.Load(path)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	worlds, err := scene.WorldMatrices(s.GameObjects())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Lights: %d\n", len(s.Lights()))
	for _, l := range s.Lights() {
		fmt.Printf("  %s: dir=%v color=%v x%.2f\n", l.Name, l.Direction, l.Color, l.Intensity)
	}

	fmt.Printf("GameObjects: %d\n", len(worlds))
	for i, g := range s.GameObjects() {
		printMesh(g.Mesh)
		fmt.Printf("    Texture: %q\n", g.Texture)
		if worlds[i].IsIdentity() {
			fmt.Printf("    World: identity\n")
		} else {
			fmt.Printf("    World:\n%s\n", indent(worlds[i].String()))
		}
	}

	v := s.View
	fmt.Printf("Camera: pos=%v dir=%v up=%v fov=%.1f near=%g far=%g\n",
		v.Position, v.Direction, v.Up, v.FOV, v.Near, v.Far)
	fmt.Printf("View:\n%s\n", indent(v.Matrix().String()))
	fmt.Printf("Projection (%dx%d):\n%s\n", *width, *height, indent(v.Projection(*width, *height).String()))

	// One walk step, the pose an interactive host would reach first.
	cam := v.Camera()
	cam.Move(camera.Forward)
	fmt.Printf("After one step forward: pos=%v dir=%v\n", cam.Position, cam.Direction)
}

func printObject(o *obj.Object) {
	fmt.Printf("Object %q: positions=%d, normals=%d, uvs=%d, triangles=%d\n",
		o.Name, len(o.Positions), len(o.Normals), len(o.UVs), o.TriangleCount())
	if len(o.MaterialLibs) > 0 {
		fmt.Printf("  mtllib: %s\n", strings.Join(o.MaterialLibs, ", "))
	}
	for i, g := range o.Groups {
		fmt.Printf("  Group[%d] %q: tris=%d, material=%q\n", i, g.Name, len(g.Triangles), g.Material)
	}
}

func printMesh(m *mesh.Mesh) {
	lo, hi := m.Bounds()
	size := hi.Sub(lo)
	center, radius := m.Center()
	fmt.Printf("  Mesh %q: tris=%d\n", m.Name, len(m.Triangles))
	fmt.Printf("    BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	fmt.Printf("    Size: %.3f x %.3f x %.3f, center=%v r=%.3f\n", size[0], size[1], size[2], center, radius)
}

func indent(s string) string {
	return "      " + strings.ReplaceAll(s, "\n", "\n      ")
}
