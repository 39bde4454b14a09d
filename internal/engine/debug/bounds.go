// Package debug provides debug visualization utilities for the viewer.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/terraclip/pkg/clipmap"
)

// WireframeVertexCount is the number of line vertices per box
// (12 edges x 2 endpoints).
const WireframeVertexCount = 24

// BoxWireframe returns line-list vertices for the edges of b,
// 3 floats per vertex.
func BoxWireframe(b clipmap.AABB) []float32 {
	bmin := b.Min()
	bmax := b.Max()
	minX, minY, minZ := bmin.X(), bmin.Y(), bmin.Z()
	maxX, maxY, maxZ := bmax.X(), bmax.Y(), bmax.Z()

	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// PlacedBoxWireframe places a tile's local bounds in the world the way
// the scene places instances: uniform XZ scale plus offset, with the
// vertical span stretched to the displacement height.
func PlacedBoxWireframe(local clipmap.AABB, offset mgl32.Vec3, scale, height float32) []float32 {
	if height < 1 {
		height = 1
	}
	world := clipmap.AABB{
		Position: mgl32.Vec3{
			local.Position.X()*scale + offset.X(),
			0,
			local.Position.Z()*scale + offset.Z(),
		},
		Size: mgl32.Vec3{
			local.Size.X() * scale,
			height,
			local.Size.Z() * scale,
		},
	}
	return BoxWireframe(world)
}
