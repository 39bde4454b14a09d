// Package clipmap builds the procedural tile mesh used by a geometry
// clipmap terrain renderer: a flat, height-zero grid with tapering skirt
// strips on two edges so tiles of neighboring detail levels stitch
// together without cracks. Displacement and tile placement happen
// outside this package, in the renderer's vertex shader.
package clipmap

import "github.com/go-gl/mathgl/mgl32"

// Handle identifies a mesh owned by a Factory. Zero is never valid.
type Handle uint32

// AABB is an axis-aligned bounding box anchored at Position.
type AABB struct {
	Position mgl32.Vec3
	Size     mgl32.Vec3
}

// Min returns the corner with the smallest coordinates.
func (b AABB) Min() mgl32.Vec3 { return b.Position }

// Max returns the corner opposite Min.
func (b AABB) Max() mgl32.Vec3 { return b.Position.Add(b.Size) }

// Center returns the box center.
func (b AABB) Center() mgl32.Vec3 { return b.Position.Add(b.Size.Mul(0.5)) }

// Mesh holds the complete tile mesh data ready for GPU upload.
// Tangents are packed four components per vertex.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Tangents  []float32
	Indices   []uint32
	Bounds    AABB
}

// Factory registers finished mesh buffers as a renderable resource and
// hands back an opaque handle.
//
// The factory must store Mesh.Bounds as the mesh's bounding volume
// rather than deriving one from the vertices: generated positions sit at
// height zero and say nothing about the extent after displacement.
type Factory interface {
	CreateMesh(mesh Mesh) (Handle, error)
}
