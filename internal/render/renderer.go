package render

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"sievert3d/internal/stereo"
	"sievert3d/internal/surface"
)

// Frame is everything one stereo frame needs from the application.
type Frame struct {
	Camera      stereo.Camera
	Mode        stereo.Mode
	View, Model mgl64.Mat4
	UserPoint   mgl64.Vec2 // texture space
	Angle       float64
}

// Renderer draws the surface twice per frame, once per eye, into
// disjoint color channels.
type Renderer struct {
	program   *Program
	model     *Model
	texture   uint32
	Primitive uint32
}

// NewRenderer builds the shader program, mesh buffers and texture.
func NewRenderer(tex *image.RGBA) (*Renderer, error) {
	p, err := NewProgram(VertexShaderSource, FragmentShaderSource)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		program:   p,
		model:     NewModel(p),
		texture:   NewTexture(tex),
		Primitive: gl.TRIANGLE_STRIP,
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	return r, nil
}

// Upload hands a freshly tessellated mesh to the GPU.
func (r *Renderer) Upload(m *surface.Mesh) error {
	return r.model.Upload(m)
}

// Draw renders f as a red/cyan anaglyph. The depth buffer is cleared
// between eyes; color is not, so the passes add up.
func (r *Renderer) Draw(f Frame) {
	gl.ColorMask(true, true, true, true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.Uniform1i(r.program.TMU, 0)
	gl.Uniform1i(r.program.HasNormals, boolToInt(r.model.HasNormals()))
	gl.Uniform2f(r.program.UserPoint, float32(f.UserPoint[0]), float32(f.UserPoint[1]))
	gl.Uniform1f(r.program.Angle, float32(f.Angle))

	for i, eye := range stereo.Eyes {
		if i > 0 {
			gl.Clear(gl.DEPTH_BUFFER_BIT)
		}
		mask := eye.Mask()
		gl.ColorMask(mask.R, mask.G, mask.B, mask.A)

		modelView := f.Camera.View(eye, f.View).Mul4(f.Model)
		mvp := toMat32(f.Camera.Projection(eye, f.Mode).Mul4(modelView))
		normal := toMat32(modelView).Mat3().Inv().Transpose()

		gl.UniformMatrix4fv(r.program.MVP, 1, false, &mvp[0])
		gl.UniformMatrix3fv(r.program.NormalMatrix, 1, false, &normal[0])
		r.model.Draw(r.Primitive)
	}

	m := stereo.FullMask
	gl.ColorMask(m.R, m.G, m.B, m.A)
}

// Delete releases every GPU object held by r.
func (r *Renderer) Delete() {
	gl.DeleteTextures(1, &r.texture)
	r.model.Delete()
	r.program.Delete()
}

func toMat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
