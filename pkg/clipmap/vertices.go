package clipmap

import "github.com/go-gl/mathgl/mgl32"

// VertexCount returns the number of vertices in a tile mesh of the given
// size: a (size+3)² raster minus the one unwritten corner slot, plus
// size+1 skirt vertices on each of two edges.
func VertexCount(size int) int {
	return (size+3)*(size+3) - 1 + (size+1)*2
}

// tileOffset centers the tile on the local origin. The raster spans
// [0, size+2] on both horizontal axes, so shifting by -size/2-1 puts the
// core grid's midpoint at (0, 0, 0) independent of size.
func tileOffset(size int) mgl32.Vec3 {
	return mgl32.Vec3{-float32(size)*0.5 - 1, 0, -float32(size)*0.5 - 1}
}

// tileVertices builds the ordered vertex positions for one tile: the
// main grid raster in row-major order, then the vertical skirt column,
// then the horizontal skirt row. Every height is zero.
func tileVertices(size int) []mgl32.Vec3 {
	verts := make([]mgl32.Vec3, 0, VertexCount(size))
	offset := tileOffset(size)

	// Core raster. The final raster slot (size+2, size+2) is skipped:
	// the skirt vertices begin at that flat index, and the addressing
	// function aliases the corner coordinate onto them (see pinchIndex).
	for y := 0; y < size+3; y++ {
		for x := 0; x < size+3; x++ {
			if x == size+2 && y == size+2 {
				break
			}
			verts = append(verts, mgl32.Vec3{float32(x), 0, float32(y)}.Add(offset))
		}
	}

	// Vertical skirt: one column past the right edge, pushed half a cell
	// along Z so the stitching strip tapers to half resolution.
	for y := 0; y < size+1; y++ {
		verts = append(verts, mgl32.Vec3{float32(size + 2), 0, float32(y) + 0.5}.Add(offset))
	}

	// Horizontal skirt: one row past the bottom edge, symmetric.
	for x := 0; x < size+1; x++ {
		verts = append(verts, mgl32.Vec3{float32(x) + 0.5, 0, float32(size + 2)}.Add(offset))
	}

	return verts
}
