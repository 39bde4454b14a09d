package clipmap

import "testing"

func TestIndexCount(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 60},
		{2, 108},
		{3, 168},
		{8, 648},
	}

	for _, tt := range tests {
		got := IndexCount(tt.size)
		if got != tt.want {
			t.Errorf("IndexCount(%d): expected %d, got %d", tt.size, tt.want, got)
		}
		idx := tileIndices(tt.size)
		if len(idx) != tt.want {
			t.Errorf("tileIndices(%d): expected %d indices, got %d", tt.size, tt.want, len(idx))
		}
	}
}

func TestPatch2D(t *testing.T) {
	if got := patch2D(0, 0, 5); got != 0 {
		t.Errorf("patch2D(0,0,5): expected 0, got %d", got)
	}
	if got := patch2D(3, 2, 5); got != 13 {
		t.Errorf("patch2D(3,2,5): expected 13, got %d", got)
	}
	// The raster's final coordinate aliases onto the first skirt slot.
	if got := patch2D(4, 4, 5); got != 24 {
		t.Errorf("patch2D(4,4,5): expected 24, got %d", got)
	}
	if got := pinchIndex(5); got != 24 {
		t.Errorf("pinchIndex(5): expected 24, got %d", got)
	}
	for _, stride := range []int{4, 5, 11, 51} {
		if got, want := pinchIndex(stride), uint32(stride*stride-1); got != want {
			t.Errorf("pinchIndex(%d): expected %d, got %d", stride, want, got)
		}
	}
}

func TestTileIndicesInRange(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 8, 16} {
		limit := uint32(VertexCount(size))
		for i, idx := range tileIndices(size) {
			if idx >= limit {
				t.Fatalf("size %d: index %d references vertex %d, limit %d", size, i, idx, limit)
			}
		}
	}
}

func TestTileIndicesWinding(t *testing.T) {
	// Every triangle, interior and strip alike, must face up: the
	// right-hand-rule cross product of its edges has a positive Y.
	for _, size := range []int{1, 2, 5} {
		verts := tileVertices(size)
		idx := tileIndices(size)

		for i := 0; i < len(idx); i += 3 {
			a := verts[idx[i]]
			b := verts[idx[i+1]]
			c := verts[idx[i+2]]
			n := b.Sub(a).Cross(c.Sub(a))
			if n.Y() <= 0 {
				t.Fatalf("size %d: triangle %d winds down (normal %v): %v %v %v",
					size, i/3, n, a, b, c)
			}
		}
	}
}

func TestTileIndicesStripFans(t *testing.T) {
	// size 2: interior occupies the first 54 indices, then 6 strip steps
	// of 3 triangles each. Each triangle's middle index is the far skirt
	// vertex, starting at the pinch slot (24) and advancing once per
	// step across both strips without resetting.
	idx := tileIndices(2)

	const interior = 54
	wantFar := []uint32{24, 24, 24, 25, 25, 25, 26, 26, 26, 27, 27, 27, 28, 28, 28, 29, 29, 29}

	var far []uint32
	for i := interior; i < len(idx); i += 3 {
		far = append(far, idx[i+1])
	}

	if len(far) != len(wantFar) {
		t.Fatalf("expected %d strip triangles, got %d", len(wantFar), len(far))
	}
	for i := range wantFar {
		if far[i] != wantFar[i] {
			t.Errorf("strip triangle %d: expected far vertex %d, got %d", i, wantFar[i], far[i])
		}
	}

	// First strip triangle joins the grid's two rightmost columns to the
	// pinch slot.
	if idx[interior] != 3 || idx[interior+1] != 24 || idx[interior+2] != 4 {
		t.Errorf("expected first strip triangle [3 24 4], got [%d %d %d]",
			idx[interior], idx[interior+1], idx[interior+2])
	}

	// The pinch slot is referenced only by the first strip step's fans;
	// no interior triangle touches the raster corner.
	for i := 0; i < interior; i++ {
		if idx[i] == 24 {
			t.Errorf("interior index %d references the pinch slot", i)
		}
	}
}
