package obj

import (
	"strings"
	"testing"

	"golang.org/x/image/math/f32"
)

const quadSrc = `# unit quad
mtllib quad.mtl
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl front
f 1/1/1 2/2/1 3/3/1 4/4/1
g back
usemtl back
f -1//1 -2//1 -3//1
s off
`

func TestRead_Quad(t *testing.T) {
	o, err := Read(strings.NewReader(quadSrc), "quad.obj")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if o.Name != "quad" {
		t.Errorf("Name = %q", o.Name)
	}
	if len(o.MaterialLibs) != 1 || o.MaterialLibs[0] != "quad.mtl" {
		t.Errorf("MaterialLibs = %v", o.MaterialLibs)
	}
	if len(o.Positions) != 4 || len(o.UVs) != 4 || len(o.Normals) != 1 {
		t.Fatalf("got %d positions, %d uvs, %d normals", len(o.Positions), len(o.UVs), len(o.Normals))
	}
	if o.Positions[2] != (f32.Vec3{1, 1, 0}) {
		t.Errorf("Positions[2] = %v", o.Positions[2])
	}
	if o.UVs[3] != (f32.Vec2{0, 1}) {
		t.Errorf("UVs[3] = %v", o.UVs[3])
	}

	if len(o.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(o.Groups))
	}
	front, back := o.Groups[0], o.Groups[1]
	if front.Name != "quad" || front.Material != "front" {
		t.Errorf("group 0 = %q/%q", front.Name, front.Material)
	}
	if back.Name != "back" || back.Material != "back" {
		t.Errorf("group 1 = %q/%q", back.Name, back.Material)
	}

	// quad fans into 0-1-2, 0-2-3
	want := [][3]Corner{
		{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}},
		{{0, 0, 0}, {2, 2, 0}, {3, 3, 0}},
	}
	if len(front.Triangles) != 2 || front.Triangles[0] != want[0] || front.Triangles[1] != want[1] {
		t.Errorf("front triangles = %v, want %v", front.Triangles, want)
	}

	if tri := back.Triangles[0]; tri != [3]Corner{{3, -1, 0}, {2, -1, 0}, {1, -1, 0}} {
		t.Errorf("relative indices resolved to %v", tri)
	}
	if n := o.TriangleCount(); n != 3 {
		t.Errorf("TriangleCount = %d", n)
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		Name, Src, Want string
	}{
		{"bad number", "v 0 x 0\n", "bad number"},
		{"short vertex", "v 0 0\n", "want 3 values"},
		{"zero index", "v 0 0 0\nf 0 1 1\n", "out of range"},
		{"relative past start", "v 0 0 0\nf -2 1 1\n", "out of range"},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n", "3 corners"},
		{"undefined position", "v 0 0 0\nf 1 2 3\n", "undefined vertex data"},
		{"missing vertex", "v 0 0 0\nf /1 1 1\n", "no vertex"},
	}

	for _, c := range tests {
		_, err := Read(strings.NewReader(c.Src), "bad.obj")
		if err == nil {
			t.Errorf("%s: no error", c.Name)
			continue
		}
		if !strings.Contains(err.Error(), c.Want) {
			t.Errorf("%s: error %q does not mention %q", c.Name, err, c.Want)
		}
	}
}

func TestRead_ErrorLine(t *testing.T) {
	_, err := Read(strings.NewReader("v 0 0 0\n\n# c\nvn 1 nope 0\n"), "m.obj")
	if err == nil || !strings.Contains(err.Error(), "m.obj:4") {
		t.Errorf("error %v does not carry line 4", err)
	}
}

func TestRead_LegacyNames(t *testing.T) {
	o, err := Read(strings.NewReader("o caf\xe9\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), "legacy.obj")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if o.Name != "café" {
		t.Errorf("Name = %q, want café", o.Name)
	}
}

func TestRead_Empty(t *testing.T) {
	o, err := Read(strings.NewReader("# nothing\n"), "empty.obj")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(o.Groups) != 0 || o.TriangleCount() != 0 {
		t.Errorf("empty file produced %d groups", len(o.Groups))
	}
}
