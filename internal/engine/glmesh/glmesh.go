// Package glmesh uploads generated tile meshes into OpenGL buffers.
package glmesh

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/driftline/terraclip/internal/logger"
	"github.com/driftline/terraclip/pkg/clipmap"
)

// ErrEmptyMesh is returned when a mesh has no vertices or indices.
var ErrEmptyMesh = errors.New("mesh has no geometry")

type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	bounds     clipmap.AABB
}

// Factory implements clipmap.Factory by uploading meshes to the GPU.
// All methods require a current OpenGL context.
type Factory struct {
	meshes map[clipmap.Handle]*meshBuffers
	next   clipmap.Handle
}

// NewFactory creates an empty GPU mesh factory.
func NewFactory() *Factory {
	return &Factory{
		meshes: make(map[clipmap.Handle]*meshBuffers),
		next:   1,
	}
}

// CreateMesh interleaves positions and normals, uploads them together
// with the index buffer, and returns a handle for drawing.
func (f *Factory) CreateMesh(mesh clipmap.Mesh) (clipmap.Handle, error) {
	if len(mesh.Positions) == 0 || len(mesh.Indices) == 0 {
		return 0, ErrEmptyMesh
	}

	// 6 floats per vertex: position + normal
	vertices := make([]float32, 0, len(mesh.Positions)*6)
	for i, p := range mesh.Positions {
		n := mgl32.Vec3{0, 1, 0}
		if i < len(mesh.Normals) {
			n = mesh.Normals[i]
		}
		vertices = append(vertices, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z())
	}

	m := &meshBuffers{
		indexCount: int32(len(mesh.Indices)),
		bounds:     mesh.Bounds,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	// VBO
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	// EBO
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	h := f.next
	f.next++
	f.meshes[h] = m

	logger.Debug("tile mesh uploaded",
		zap.Uint32("handle", uint32(h)),
		zap.Int("vertices", len(mesh.Positions)),
		zap.Int("indices", len(mesh.Indices)),
	)
	return h, nil
}

// Draw renders the mesh for a handle with the currently bound program.
func (f *Factory) Draw(h clipmap.Handle) {
	m, ok := f.meshes[h]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Bounds returns the stored bounding box for a handle.
func (f *Factory) Bounds(h clipmap.Handle) (clipmap.AABB, bool) {
	m, ok := f.meshes[h]
	if !ok {
		return clipmap.AABB{}, false
	}
	return m.bounds, true
}

// IndexCount returns the number of indices for a handle, or 0 if the
// handle is unknown.
func (f *Factory) IndexCount(h clipmap.Handle) int {
	m, ok := f.meshes[h]
	if !ok {
		return 0
	}
	return int(m.indexCount)
}

// Destroy releases all GPU buffers owned by the factory.
func (f *Factory) Destroy() {
	for _, m := range f.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	f.meshes = make(map[clipmap.Handle]*meshBuffers)
}
