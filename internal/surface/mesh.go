package surface

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a non-indexed triangle list. All streams are flat and parallel:
// entry i of Normals and TexCoords belongs to vertex i. Normals is empty
// when the normal stage was disabled.
type Mesh struct {
	Vertices  []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Normals   []float32 // [nx0,ny0,nz0, ...]
	TexCoords []float32 // [s0,t0, s1,t1, ...]
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return m.VertexCount() / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// HasNormals reports whether the normal stream was generated.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0
}

// Validate checks that the three streams describe the same vertices.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	switch {
	case n%3 != 0:
		return fmt.Errorf("%d vertex floats: %w", n, ErrLengthMismatch)
	case m.HasNormals() && len(m.Normals) != n:
		return fmt.Errorf("%d normal floats for %d vertex floats: %w", len(m.Normals), n, ErrLengthMismatch)
	case len(m.TexCoords) != n/3*2:
		return fmt.Errorf("%d texcoord floats for %d vertices: %w", len(m.TexCoords), n/3, ErrLengthMismatch)
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if m.IsEmpty() {
		return lo, hi
	}
	copy(lo[:], m.Vertices[:3])
	copy(hi[:], m.Vertices[:3])
	for i := 3; i < len(m.Vertices); i += 3 {
		for k := 0; k < 3; k++ {
			c := m.Vertices[i+k]
			if c < lo[k] {
				lo[k] = c
			}
			if c > hi[k] {
				hi[k] = c
			}
		}
	}
	return lo, hi
}
