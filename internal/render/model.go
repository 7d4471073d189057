package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"sievert3d/internal/surface"
)

// Model owns one vertex array and the three buffers behind it. Buffers
// are replaced wholesale on every Upload.
type Model struct {
	vao        uint32
	vbo        [3]uint32 // vertices, normals, texcoords
	normalLoc  int32
	count      int32
	hasNormals bool
}

// NewModel allocates the GPU objects and binds them to p's attributes.
func NewModel(p *Program) *Model {
	m := &Model{normalLoc: p.Normal}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(int32(len(m.vbo)), &m.vbo[0])

	attribs := [3]struct {
		loc  int32
		size int32
	}{
		{p.Vertex, 3},
		{p.Normal, 3},
		{p.TextCoord, 2},
	}
	for i, a := range attribs {
		if a.loc < 0 {
			continue
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo[i])
		gl.VertexAttribPointer(uint32(a.loc), a.size, gl.FLOAT, false, 0, gl.PtrOffset(0))
		gl.EnableVertexAttribArray(uint32(a.loc))
	}
	gl.BindVertexArray(0)
	return m
}

// Upload replaces the buffer contents with mesh.
func (m *Model) Upload(mesh *surface.Mesh) error {
	if err := mesh.Validate(); err != nil {
		return err
	}
	bufferData(m.vbo[0], mesh.Vertices)
	bufferData(m.vbo[1], mesh.Normals)
	bufferData(m.vbo[2], mesh.TexCoords)
	m.count = int32(mesh.VertexCount())
	m.hasNormals = mesh.HasNormals()
	m.bindNormals(normalAttrib(mesh))
	return nil
}

// normalAttrib decides where the normal attribute comes from for mesh.
// fromBuffer is false when the normal stream is empty; the attribute then
// reads the constant value instead of fetching past the end of the buffer.
func normalAttrib(mesh *surface.Mesh) (fromBuffer bool, constant [3]float32) {
	if mesh.HasNormals() {
		return true, constant
	}
	n := surface.DefaultNormal
	return false, [3]float32{float32(n[0]), float32(n[1]), float32(n[2])}
}

func (m *Model) bindNormals(fromBuffer bool, constant [3]float32) {
	if m.normalLoc < 0 {
		return
	}
	loc := uint32(m.normalLoc)
	gl.BindVertexArray(m.vao)
	if fromBuffer {
		gl.EnableVertexAttribArray(loc)
	} else {
		gl.DisableVertexAttribArray(loc)
		gl.VertexAttrib3f(loc, constant[0], constant[1], constant[2])
	}
	gl.BindVertexArray(0)
}

func bufferData(vbo uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STREAM_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
}

// HasNormals reports whether the last upload carried normals.
func (m *Model) HasNormals() bool {
	return m.hasNormals
}

// Draw issues one draw call over all uploaded vertices.
func (m *Model) Draw(mode uint32) {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(mode, 0, m.count)
	gl.BindVertexArray(0)
}

// Delete releases the GPU objects.
func (m *Model) Delete() {
	gl.DeleteBuffers(int32(len(m.vbo)), &m.vbo[0])
	gl.DeleteVertexArrays(1, &m.vao)
}
