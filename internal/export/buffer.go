// Package export writes generated tile meshes to disk formats.
package export

import (
	"github.com/driftline/terraclip/pkg/clipmap"
)

// Buffer is an in-memory mesh factory. It retains every mesh passed to
// CreateMesh so the meshes can be written out afterwards.
type Buffer struct {
	meshes []clipmap.Mesh
}

// CreateMesh stores the mesh and returns its handle. Handles index into
// Meshes starting from 1.
func (b *Buffer) CreateMesh(mesh clipmap.Mesh) (clipmap.Handle, error) {
	b.meshes = append(b.meshes, mesh)
	return clipmap.Handle(len(b.meshes)), nil
}

// Meshes returns the recorded meshes in creation order.
func (b *Buffer) Meshes() []clipmap.Mesh {
	return b.meshes
}
