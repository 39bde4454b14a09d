package clipmap

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrSizeTooSmall reports a tile size below 1; the buffer formulas
	// degenerate there.
	ErrSizeTooSmall = errors.New("tile size must be at least 1")

	// ErrLevelsTooSmall reports a level count below 1.
	ErrLevelsTooSmall = errors.New("level count must be at least 1")
)

// Generate builds the clipmap tile mesh for the given grid size,
// registers it with the factory, and returns one handle per mesh.
//
// levels is reserved for the extra mesh variants (trim, filler, cross,
// seam) a complete clipmap needs; only the tile mesh is produced today.
// Generation is deterministic: equal inputs always yield identical
// buffers. A factory failure is returned to the caller as-is.
func Generate(f Factory, size, levels int) ([]Handle, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSizeTooSmall, size)
	}
	if levels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLevelsTooSmall, levels)
	}

	tile, err := f.CreateMesh(TileMesh(size))
	if err != nil {
		return nil, err
	}

	return []Handle{tile}, nil
}

// TileMesh assembles the complete buffer set for one tile: positions,
// flat-up normals, a zeroed tangent channel, the triangle list, and the
// explicit bounding volume.
func TileMesh(size int) Mesh {
	positions := tileVertices(size)

	normals := make([]mgl32.Vec3, len(positions))
	for i := range normals {
		normals[i] = mgl32.Vec3{0, 1, 0}
	}

	return Mesh{
		Positions: positions,
		Normals:   normals,
		Tangents:  make([]float32, len(positions)*4),
		Indices:   tileIndices(size),
		Bounds:    tileBounds(size),
	}
}

// tileBounds is the bounding volume handed to the factory: the raster
// footprint with a nominal unit of vertical thickness. The real extent
// depends on whatever displacement the renderer applies later, which is
// why the factory must not derive bounds from the flat vertex data.
func tileBounds(size int) AABB {
	return AABB{
		Position: tileOffset(size),
		Size:     mgl32.Vec3{float32(size) + 2, 1, float32(size) + 2},
	}
}
