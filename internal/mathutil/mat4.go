package mathutil

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Mat4 is a 4×4 matrix stored row-major: m[4*r+c] is row r, column c.
// Value type for zero heap allocation; == compares exactly.
type Mat4 [16]float32

func Mat4Zero() Mat4 {
	return Mat4{}
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromFlat fills a matrix row-major from the first 16 values of s:
// s[k] lands in row k/4, column k%4. Panics if s is shorter than 16.
func Mat4FromFlat(s []float32) Mat4 {
	if len(s) < 16 {
		panic(fmt.Sprintf("mathutil: Mat4FromFlat needs 16 values, got %d", len(s)))
	}
	var m Mat4
	copy(m[:], s[:16])
	return m
}

// Mat4FromRows builds a matrix from nested rows, rows[r][c].
func Mat4FromRows(rows [4][4]float32) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = rows[r][c]
		}
	}
	return m
}

// Mat4FromColumns builds a matrix whose column j is cj.
func Mat4FromColumns(c0, c1, c2, c3 Vec4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		m[r*4+0] = c0[r]
		m[r*4+1] = c1[r]
		m[r*4+2] = c2[r]
		m[r*4+3] = c3[r]
	}
	return m
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	checkIndex("Mat4 row", r, 4)
	checkIndex("Mat4 column", c, 4)
	return m[r*4+c]
}

// Set assigns the element at row r, column c.
func (m *Mat4) Set(r, c int, v float32) {
	checkIndex("Mat4 row", r, 4)
	checkIndex("Mat4 column", c, 4)
	m[r*4+c] = v
}

func (m Mat4) Row(r int) Vec4 {
	checkIndex("Mat4 row", r, 4)
	return Vec4{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

func (m Mat4) Col(c int) Vec4 {
	checkIndex("Mat4 column", c, 4)
	return Vec4{m[c], m[4+c], m[8+c], m[12+c]}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Mul returns m × b. Every builder below composes through it.
func (m Mat4) Mul(b Mat4) Mat4 {
	return Mat4Mul(m, b)
}

func (m Mat4) Add(b Mat4) Mat4 {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

func (m Mat4) Sub(b Mat4) Mat4 {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

func (m Mat4) Neg() Mat4 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

// MulScalar returns m × s.
func (m Mat4) MulScalar(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// ScalarMul returns s × m. Same result as m.MulScalar(s).
func ScalarMul(s float32, m Mat4) Mat4 {
	for i := range m {
		m[i] = s * m[i]
	}
	return m
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// MulPoint returns M·v for a column vector v with an implied w=1, so
// column 3 is always added. The fourth output row is dropped.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// MulDir returns M·v for a column vector v with w=0 (no column 3).
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2],
	}
}

// MulVec4 returns M·v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// TransformVec4 returns v·M for a row vector v. This is the convention
// Translate and the camera view matrix are laid out for: row 3 carries
// the translation.
func (m Mat4) TransformVec4(v Vec4) Vec4 {
	return Vec4{
		v[0]*m[0] + v[1]*m[4] + v[2]*m[8] + v[3]*m[12],
		v[0]*m[1] + v[1]*m[5] + v[2]*m[9] + v[3]*m[13],
		v[0]*m[2] + v[1]*m[6] + v[2]*m[10] + v[3]*m[14],
		v[0]*m[3] + v[1]*m[7] + v[2]*m[11] + v[3]*m[15],
	}
}

// TransformPoint returns (v,1)·M without dividing by w.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		v[0]*m[0] + v[1]*m[4] + v[2]*m[8] + m[12],
		v[0]*m[1] + v[1]*m[5] + v[2]*m[9] + m[13],
		v[0]*m[2] + v[1]*m[6] + v[2]*m[10] + m[14],
	}
}

// TransformDir returns (v,0)·M; translation is ignored.
func (m Mat4) TransformDir(v Vec3) Vec3 {
	return Vec3{
		v[0]*m[0] + v[1]*m[4] + v[2]*m[8],
		v[0]*m[1] + v[1]*m[5] + v[2]*m[9],
		v[0]*m[2] + v[1]*m[6] + v[2]*m[10],
	}
}

// Equal compares all 16 elements exactly, with no tolerance.
func (m Mat4) Equal(b Mat4) bool {
	return m == b
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(b Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.ApproxEqual(Mat4Identity(), 1e-6)
}

// Flat returns the 16 elements row-major, ready for uniform upload.
func (m Mat4) Flat() [16]float32 {
	return [16]float32(m)
}

// Rows returns the matrix as nested rows.
func (m Mat4) Rows() [4][4]float32 {
	var rows [4][4]float32
	for r := 0; r < 4; r++ {
		copy(rows[r][:], m[r*4:r*4+4])
	}
	return rows
}

// F32 converts to the x/image row-major matrix type; the layout is identical.
func (m Mat4) F32() f32.Mat4 {
	return f32.Mat4(m)
}

func (m Mat4) String() string {
	r := ""
	for i, n := range m {
		if i > 0 && i%4 == 0 {
			r += "\n"
		}
		r += fmt.Sprintf("%8.3f ", n)
	}
	return r
}
