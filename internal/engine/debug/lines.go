package debug

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/terraclip/internal/engine/shader"
)

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

uniform vec3 uColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`

// Lines batches world-space line segments and draws them in one call.
// Requires a current OpenGL context.
type Lines struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	verts   []float32
}

// NewLines creates the line renderer.
func NewLines() (*Lines, error) {
	program, err := shader.Compile(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling line shader: %w", err)
	}

	l := &Lines{program: program}

	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)

	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return l, nil
}

// Reset discards the batched segments.
func (l *Lines) Reset() {
	l.verts = l.verts[:0]
}

// Add appends line-list vertices: 3 floats per vertex, 2 vertices per
// segment.
func (l *Lines) Add(vertices []float32) {
	l.verts = append(l.verts, vertices...)
}

// Render uploads the batch and draws every segment in one color.
func (l *Lines) Render(viewProj mgl32.Mat4, color mgl32.Vec3) {
	if len(l.verts) == 0 {
		return
	}

	l.program.Use()
	gl.UniformMatrix4fv(l.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform3f(l.program.Uniform("uColor"), color.X(), color.Y(), color.Z())

	gl.BindVertexArray(l.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(l.verts)*4, unsafe.Pointer(&l.verts[0]), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(l.verts)/3))
	gl.BindVertexArray(0)
}

// Destroy releases GL resources.
func (l *Lines) Destroy() {
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteVertexArrays(1, &l.vao)
	l.program.Delete()
}
