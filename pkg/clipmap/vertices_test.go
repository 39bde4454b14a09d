package clipmap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertexCount(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 19},
		{2, 30},
		{3, 43},
		{8, 138},
		{48, 2698},
	}

	for _, tt := range tests {
		got := VertexCount(tt.size)
		if got != tt.want {
			t.Errorf("VertexCount(%d): expected %d, got %d", tt.size, tt.want, got)
		}
		verts := tileVertices(tt.size)
		if len(verts) != tt.want {
			t.Errorf("tileVertices(%d): expected %d vertices, got %d", tt.size, tt.want, len(verts))
		}
	}
}

func TestTileOffset(t *testing.T) {
	tests := []struct {
		size int
		want mgl32.Vec3
	}{
		{1, mgl32.Vec3{-1.5, 0, -1.5}},
		{2, mgl32.Vec3{-2, 0, -2}},
		{48, mgl32.Vec3{-25, 0, -25}},
	}

	for _, tt := range tests {
		if got := tileOffset(tt.size); got != tt.want {
			t.Errorf("tileOffset(%d): expected %v, got %v", tt.size, tt.want, got)
		}
	}
}

func TestTileVerticesLayout(t *testing.T) {
	// size 2: a 5x5 raster minus its corner slot (24 vertices), then 3
	// vertical and 3 horizontal skirt vertices.
	verts := tileVertices(2)
	if len(verts) != 30 {
		t.Fatalf("expected 30 vertices, got %d", len(verts))
	}

	tests := []struct {
		index int
		want  mgl32.Vec3
	}{
		{0, mgl32.Vec3{-2, 0, -2}},     // raster origin
		{4, mgl32.Vec3{2, 0, -2}},      // end of first row
		{12, mgl32.Vec3{0, 0, 0}},      // raster center on the local origin
		{23, mgl32.Vec3{1, 0, 2}},      // last written raster vertex (3, 4)
		{24, mgl32.Vec3{2, 0, -1.5}},   // first vertical skirt vertex
		{26, mgl32.Vec3{2, 0, 0.5}},    // last vertical skirt vertex
		{27, mgl32.Vec3{-1.5, 0, 2}},   // first horizontal skirt vertex
		{29, mgl32.Vec3{0.5, 0, 2}},    // last horizontal skirt vertex
	}

	for _, tt := range tests {
		if got := verts[tt.index]; got != tt.want {
			t.Errorf("vertex %d: expected %v, got %v", tt.index, tt.want, got)
		}
	}
}

func TestTileVerticesFlatAndCentered(t *testing.T) {
	for _, size := range []int{1, 2, 7, 16} {
		verts := tileVertices(size)

		min := verts[0]
		max := verts[0]
		for i, v := range verts {
			if v.Y() != 0 {
				t.Fatalf("size %d: vertex %d has nonzero height %v", size, i, v.Y())
			}
			for a := 0; a < 3; a++ {
				if v[a] < min[a] {
					min[a] = v[a]
				}
				if v[a] > max[a] {
					max[a] = v[a]
				}
			}
		}

		// The raster spans [0, size+2] before offsetting, so a centered
		// tile has exactly mirrored extents.
		if min.X() != -max.X() || min.Z() != -max.Z() {
			t.Errorf("size %d: expected symmetric extents, got min %v max %v", size, min, max)
		}
		if want := float32(size)*0.5 + 1; max.X() != want || max.Z() != want {
			t.Errorf("size %d: expected half-extent %v, got %v / %v", size, want, max.X(), max.Z())
		}
	}
}
