// Package render is the OpenGL side of the viewer: shader program, GPU
// mesh buffers, texture and the two-pass anaglyph draw. Every function
// here needs a current GL 4.1 core context.
package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	VertexShaderSource = `
		#version 410
		in vec3 vertex;
		in vec3 normal;
		in vec2 textCoord;
		uniform mat4 ModelViewProjectionMatrix;
		uniform mat3 ModelNormalMatrix;
		uniform vec2 userPoint;
		uniform float angleInRadians;
		out vec3 vNormal;
		out vec2 vTextCoord;
		out vec2 vRawCoord;
		void main() {
			vec2 p = textCoord - userPoint;
			float c = cos(angleInRadians);
			float s = sin(angleInRadians);
			vTextCoord = vec2(c*p.x - s*p.y, s*p.x + c*p.y) + userPoint;
			vRawCoord = textCoord;
			vNormal = ModelNormalMatrix * normal;
			gl_Position = ModelViewProjectionMatrix * vec4(vertex, 1.0);
		}
	` + "\x00"

	FragmentShaderSource = `
		#version 410
		in vec3 vNormal;
		in vec2 vTextCoord;
		in vec2 vRawCoord;
		uniform sampler2D tmu;
		uniform bool hasNormals;
		uniform vec2 userPoint;
		out vec4 frag_colour;
		void main() {
			vec3 base = texture(tmu, vTextCoord).rgb;
			if (distance(vRawCoord, userPoint) < 0.01) {
				base = vec3(1.0);
			}
			if (!hasNormals) {
				frag_colour = vec4(base, 1.0);
				return;
			}
			vec3 n = normalize(gl_FrontFacing ? vNormal : -vNormal);
			vec3 lightDirection = normalize(vec3(1.0, 1.0, 1.0));
			float diff = max(dot(n, lightDirection), 0.0);
			vec3 reflectDirection = reflect(-lightDirection, n);
			float spec = pow(max(dot(reflectDirection, vec3(0.0, 0.0, 1.0)), 0.0), 32.0);
			vec3 intensity = vec3(0.2) + diff * vec3(0.8) + spec * vec3(1.0);
			frag_colour = vec4(base * intensity, 1.0);
		}
	` + "\x00"
)

// Program is a linked shader program with its attribute and uniform
// locations. A location of -1 means the driver optimised it away.
type Program struct {
	ID uint32

	Vertex, Normal, TextCoord int32

	MVP, NormalMatrix, UserPoint, Angle, TMU, HasNormals int32
}

// NewProgram compiles and links the two shaders and looks up locations.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (*Program, error) {
	id, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	return &Program{
		ID:           id,
		Vertex:       gl.GetAttribLocation(id, gl.Str("vertex\x00")),
		Normal:       gl.GetAttribLocation(id, gl.Str("normal\x00")),
		TextCoord:    gl.GetAttribLocation(id, gl.Str("textCoord\x00")),
		MVP:          gl.GetUniformLocation(id, gl.Str("ModelViewProjectionMatrix\x00")),
		NormalMatrix: gl.GetUniformLocation(id, gl.Str("ModelNormalMatrix\x00")),
		UserPoint:    gl.GetUniformLocation(id, gl.Str("userPoint\x00")),
		Angle:        gl.GetUniformLocation(id, gl.Str("angleInRadians\x00")),
		TMU:          gl.GetUniformLocation(id, gl.Str("tmu\x00")),
		HasNormals:   gl.GetUniformLocation(id, gl.Str("hasNormals\x00")),
	}, nil
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", msg)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %v: %v", shaderName(shaderType), msg)
	}

	return shader, nil
}

// infoLog reads the info log of a shader or program object.
func infoLog(
	obj uint32,
	get func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var n int32
	get(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	getLog(obj, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func shaderName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	default:
		return fmt.Sprintf("shader 0x%x", shaderType)
	}
}
