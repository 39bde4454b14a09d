package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/terraclip/pkg/clipmap"
)

func TestBoxWireframe(t *testing.T) {
	b := clipmap.AABB{
		Position: mgl32.Vec3{-2, 0, -2},
		Size:     mgl32.Vec3{4, 1, 4},
	}

	verts := BoxWireframe(b)
	if len(verts) != WireframeVertexCount*3 {
		t.Fatalf("expected %d floats, got %d", WireframeVertexCount*3, len(verts))
	}

	// Every vertex lies on a box corner, and each corner is the
	// endpoint of exactly three edges.
	corners := make(map[[3]float32]int)
	for i := 0; i < len(verts); i += 3 {
		v := [3]float32{verts[i], verts[i+1], verts[i+2]}
		if (v[0] != -2 && v[0] != 2) || (v[1] != 0 && v[1] != 1) || (v[2] != -2 && v[2] != 2) {
			t.Fatalf("vertex %v is not a box corner", v)
		}
		corners[v]++
	}

	if len(corners) != 8 {
		t.Errorf("expected 8 distinct corners, got %d", len(corners))
	}
	for corner, count := range corners {
		if count != 3 {
			t.Errorf("corner %v appears %d times, expected 3", corner, count)
		}
	}
}

func TestPlacedBoxWireframe(t *testing.T) {
	local := clipmap.AABB{
		Position: mgl32.Vec3{-2, 0, -2},
		Size:     mgl32.Vec3{4, 1, 4},
	}

	verts := PlacedBoxWireframe(local, mgl32.Vec3{10, 0, 20}, 2, 24)

	minX, maxX := verts[0], verts[0]
	minY, maxY := verts[1], verts[1]
	minZ, maxZ := verts[2], verts[2]
	for i := 0; i < len(verts); i += 3 {
		if verts[i] < minX {
			minX = verts[i]
		}
		if verts[i] > maxX {
			maxX = verts[i]
		}
		if verts[i+1] < minY {
			minY = verts[i+1]
		}
		if verts[i+1] > maxY {
			maxY = verts[i+1]
		}
		if verts[i+2] < minZ {
			minZ = verts[i+2]
		}
		if verts[i+2] > maxZ {
			maxZ = verts[i+2]
		}
	}

	if minX != 6 || maxX != 14 {
		t.Errorf("expected X span [6, 14], got [%f, %f]", minX, maxX)
	}
	if minZ != 16 || maxZ != 24 {
		t.Errorf("expected Z span [16, 24], got [%f, %f]", minZ, maxZ)
	}
	if minY != 0 || maxY != 24 {
		t.Errorf("expected Y span [0, 24], got [%f, %f]", minY, maxY)
	}
}

func TestPlacedBoxWireframeMinimumHeight(t *testing.T) {
	local := clipmap.AABB{
		Position: mgl32.Vec3{-1, 0, -1},
		Size:     mgl32.Vec3{2, 1, 2},
	}

	verts := PlacedBoxWireframe(local, mgl32.Vec3{}, 1, 0)

	maxY := verts[1]
	for i := 1; i < len(verts); i += 3 {
		if verts[i] > maxY {
			maxY = verts[i]
		}
	}
	if maxY != 1 {
		t.Errorf("expected minimum box height 1, got %f", maxY)
	}
}
