package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/math/f32"
	"golang.org/x/text/encoding/charmap"
)

// Parse reads a wavefront .obj file.
func Parse(path string) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses wavefront text from r. name is used in error messages.
func Read(r io.Reader, name string) (*Object, error) {
	p := &parser{name: name, obj: &Object{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", name, err)
	}
	p.flush()
	if err := p.check(); err != nil {
		return nil, err
	}
	return p.obj, nil
}

type parser struct {
	name string
	line int
	obj  *Object

	cur     Group
	pending bool
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("obj: %s:%d: %s", p.name, p.line, fmt.Sprintf(format, args...))
}

func (p *parser) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	args := fields[1:]
	switch fields[0] {
	case "v":
		v, err := p.floats(args, 3, 3)
		if err != nil {
			return err
		}
		p.obj.Positions = append(p.obj.Positions, f32.Vec3{v[0], v[1], v[2]})
	case "vn":
		v, err := p.floats(args, 3, 3)
		if err != nil {
			return err
		}
		p.obj.Normals = append(p.obj.Normals, f32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := p.floats(args, 1, 2)
		if err != nil {
			return err
		}
		p.obj.UVs = append(p.obj.UVs, f32.Vec2{v[0], v[1]})
	case "f":
		return p.face(args)
	case "o":
		name := decodeName(strings.Join(args, " "))
		if p.obj.Name == "" {
			p.obj.Name = name
		}
		p.startGroup(name, p.cur.Material)
	case "g":
		p.startGroup(decodeName(strings.Join(args, " ")), p.cur.Material)
	case "usemtl":
		p.startGroup(p.cur.Name, decodeName(strings.Join(args, " ")))
	case "mtllib":
		for _, a := range args {
			p.obj.MaterialLibs = append(p.obj.MaterialLibs, decodeName(a))
		}
	default:
		// s, l, p, curv and the rest carry nothing the mesh needs.
	}
	return nil
}

// floats parses at least need values, keeping up to keep of them.
// Missing trailing values are zero.
func (p *parser) floats(args []string, need, keep int) ([3]float32, error) {
	var out [3]float32
	if len(args) < need {
		return out, p.errorf("want %d values, got %d", need, len(args))
	}
	for i := 0; i < keep && i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return out, p.errorf("bad number %q", args[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}

func (p *parser) face(args []string) error {
	if len(args) < 3 {
		return p.errorf("face needs 3 corners, got %d", len(args))
	}
	corners := make([]Corner, len(args))
	for i, a := range args {
		c, err := p.corner(a)
		if err != nil {
			return err
		}
		corners[i] = c
	}
	for i := 1; i+1 < len(corners); i++ {
		p.cur.Triangles = append(p.cur.Triangles, [3]Corner{corners[0], corners[i], corners[i+1]})
	}
	p.pending = true
	return nil
}

// corner parses v, v/t, v//n or v/t/n.
func (p *parser) corner(s string) (Corner, error) {
	c := Corner{V: -1, T: -1, N: -1}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return c, p.errorf("bad face corner %q", s)
	}

	var err error
	if c.V, err = p.index(parts[0], len(p.obj.Positions)); err != nil {
		return c, err
	}
	if c.V < 0 {
		return c, p.errorf("face corner %q has no vertex", s)
	}
	if len(parts) > 1 {
		if c.T, err = p.index(parts[1], len(p.obj.UVs)); err != nil {
			return c, err
		}
	}
	if len(parts) > 2 {
		if c.N, err = p.index(parts[2], len(p.obj.Normals)); err != nil {
			return c, err
		}
	}
	return c, nil
}

// index converts a one-based (or negative, relative) reference to a
// zero-based index. An empty reference yields -1.
func (p *parser) index(s string, count int) (int, error) {
	if s == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.errorf("bad index %q", s)
	}
	switch {
	case n > 0:
		return n - 1, nil
	case n < 0 && count+n >= 0:
		return count + n, nil
	}
	return 0, p.errorf("index %d out of range", n)
}

func (p *parser) startGroup(name, material string) {
	p.flush()
	p.cur = Group{Name: name, Material: material}
}

func (p *parser) flush() {
	if p.pending {
		p.obj.Groups = append(p.obj.Groups, p.cur)
	}
	p.cur.Triangles = nil
	p.pending = false
}

// check rejects forward references that never got defined.
func (p *parser) check() error {
	o := p.obj
	for _, g := range o.Groups {
		for _, tri := range g.Triangles {
			for _, c := range tri {
				if c.V >= len(o.Positions) || c.T >= len(o.UVs) || c.N >= len(o.Normals) {
					return fmt.Errorf("obj: %s: face references undefined vertex data (v=%d t=%d n=%d)", p.name, c.V+1, c.T+1, c.N+1)
				}
			}
		}
	}
	return nil
}

// decodeName returns s as UTF-8. Exporters that predate UTF-8 write
// names in Windows-1252.
func decodeName(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	decoded, err := charmap.Windows1252.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return decoded
}
