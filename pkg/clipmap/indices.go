package clipmap

// IndexCount returns the number of triangle indices in a tile mesh of
// the given size: (size+1)² interior cells at two triangles each, plus
// size+1 stitching steps at three triangles on each of two edges.
func IndexCount(size int) int {
	return (size+1)*(size+1)*6 + (size+1)*9*2
}

// patch2D maps a raster coordinate to its flat vertex index, row-major
// with the given stride. Seam-free stitching hinges on this mapping, so
// it stays a standalone function instead of inline arithmetic.
func patch2D(x, y, stride int) uint32 {
	return uint32(y*stride + x)
}

// pinchIndex is the flat index the raster's final coordinate
// (stride-1, stride-1) aliases to. No grid vertex is ever written there;
// the slot holds the first skirt vertex, and the strip fans walk forward
// from it, which is how the two tapering strips converge without a
// crack. The aliasing is intentional; do not "repair" it by emitting a
// grid vertex for the corner.
func pinchIndex(stride int) uint32 {
	return patch2D(stride-1, stride-1, stride)
}

// tileIndices builds the triangle list for one tile. Every triangle
// winds so the right-hand rule yields a +Y normal. Interior cells come
// first, then the two stitching strips; a single far counter walks the
// skirt vertices in the order tileVertices emitted them, continuing
// across both strips without resetting.
func tileIndices(size int) []uint32 {
	idx := make([]uint32, 0, IndexCount(size))
	stride := size + 3

	// Interior cells, split along the cell diagonal.
	for y := 0; y < size+1; y++ {
		for x := 0; x < size+1; x++ {
			idx = append(idx,
				patch2D(x, y, stride), patch2D(x, y+1, stride), patch2D(x+1, y+1, stride),
				patch2D(x, y, stride), patch2D(x+1, y+1, stride), patch2D(x+1, y, stride),
			)
		}
	}

	// Stitching strips: per step, three triangles fan out from the far
	// skirt vertex m, tapering the edge from full to half resolution so
	// a finer tile can butt against a coarser neighbor losslessly.
	m := pinchIndex(stride)
	for y := 0; y < size+1; y++ {
		idx = append(idx,
			patch2D(size+1, y, stride), m, patch2D(size+2, y, stride),
			patch2D(size+1, y+1, stride), m, patch2D(size+1, y, stride),
			patch2D(size+2, y+1, stride), m, patch2D(size+1, y+1, stride),
		)
		m++
	}
	for x := 0; x < size+1; x++ {
		idx = append(idx,
			patch2D(x, size+2, stride), m, patch2D(x, size+1, stride),
			patch2D(x, size+1, stride), m, patch2D(x+1, size+1, stride),
			patch2D(x+1, size+1, stride), m, patch2D(x+1, size+2, stride),
		)
		m++
	}

	return idx
}
