package clipmap

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// recordingFactory captures created meshes and can be forced to fail.
type recordingFactory struct {
	meshes []Mesh
	fail   error
}

func (f *recordingFactory) CreateMesh(mesh Mesh) (Handle, error) {
	if f.fail != nil {
		return 0, f.fail
	}
	f.meshes = append(f.meshes, mesh)
	return Handle(len(f.meshes)), nil
}

func TestGenerate(t *testing.T) {
	f := &recordingFactory{}

	handles, err := Generate(f, 2, 7)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(handles) != 1 {
		t.Fatalf("expected 1 handle, got %d", len(handles))
	}
	if handles[0] == 0 {
		t.Error("expected a nonzero handle")
	}
	if len(f.meshes) != 1 {
		t.Fatalf("expected 1 factory call, got %d", len(f.meshes))
	}

	mesh := f.meshes[0]
	if len(mesh.Positions) != 30 {
		t.Errorf("expected 30 positions, got %d", len(mesh.Positions))
	}
	if len(mesh.Indices) != 108 {
		t.Errorf("expected 108 indices, got %d", len(mesh.Indices))
	}

	up := mgl32.Vec3{0, 1, 0}
	if len(mesh.Normals) != len(mesh.Positions) {
		t.Fatalf("expected %d normals, got %d", len(mesh.Positions), len(mesh.Normals))
	}
	for i, n := range mesh.Normals {
		if n != up {
			t.Fatalf("normal %d: expected %v, got %v", i, up, n)
		}
	}

	if want := len(mesh.Positions) * 4; len(mesh.Tangents) != want {
		t.Errorf("expected %d tangent components, got %d", want, len(mesh.Tangents))
	}
	for i, tan := range mesh.Tangents {
		if tan != 0 {
			t.Fatalf("tangent component %d: expected 0, got %v", i, tan)
		}
	}

	wantBounds := AABB{Position: mgl32.Vec3{-2, 0, -2}, Size: mgl32.Vec3{4, 1, 4}}
	if mesh.Bounds != wantBounds {
		t.Errorf("expected bounds %+v, got %+v", wantBounds, mesh.Bounds)
	}
}

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		size      int
		wantVerts int
		wantIdx   int
	}{
		{1, 19, 60},
		{2, 30, 108},
		{48, 2698, 15288},
	}

	for _, tt := range tests {
		f := &recordingFactory{}
		if _, err := Generate(f, tt.size, 1); err != nil {
			t.Fatalf("Generate(size=%d) failed: %v", tt.size, err)
		}
		mesh := f.meshes[0]
		if len(mesh.Positions) != tt.wantVerts {
			t.Errorf("size %d: expected %d vertices, got %d", tt.size, tt.wantVerts, len(mesh.Positions))
		}
		if len(mesh.Indices) != tt.wantIdx {
			t.Errorf("size %d: expected %d indices, got %d", tt.size, tt.wantIdx, len(mesh.Indices))
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		levels  int
		wantErr error
	}{
		{"zero size", 0, 7, ErrSizeTooSmall},
		{"negative size", -3, 7, ErrSizeTooSmall},
		{"zero levels", 2, 0, ErrLevelsTooSmall},
		{"negative levels", 2, -1, ErrLevelsTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &recordingFactory{}
			handles, err := Generate(f, tt.size, tt.levels)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if handles != nil {
				t.Errorf("expected no handles, got %v", handles)
			}
			if len(f.meshes) != 0 {
				t.Errorf("factory called %d times despite invalid input", len(f.meshes))
			}
		})
	}
}

func TestGenerateFactoryError(t *testing.T) {
	// A factory failure passes through unchanged.
	failure := errors.New("out of device memory")
	f := &recordingFactory{fail: failure}

	handles, err := Generate(f, 2, 1)
	if err != failure {
		t.Fatalf("expected factory error unchanged, got %v", err)
	}
	if handles != nil {
		t.Errorf("expected no handles on factory failure, got %v", handles)
	}
}

func TestTileMeshDeterministic(t *testing.T) {
	a := TileMesh(5)
	b := TileMesh(5)
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical meshes from identical inputs")
	}
}

func TestTileMeshBounds(t *testing.T) {
	for _, size := range []int{1, 2, 48} {
		bounds := TileMesh(size).Bounds

		if bounds.Position != tileOffset(size) {
			t.Errorf("size %d: bounds anchored at %v, vertices offset by %v",
				size, bounds.Position, tileOffset(size))
		}
		if want := float32(size) + 2; bounds.Size.X() != want || bounds.Size.Z() != want {
			t.Errorf("size %d: expected horizontal extent %v, got %v / %v",
				size, want, bounds.Size.X(), bounds.Size.Z())
		}
		if bounds.Size.Y() != 1 {
			t.Errorf("size %d: expected unit thickness, got %v", size, bounds.Size.Y())
		}

		center := bounds.Center()
		if center.X() != 0 || center.Z() != 0 {
			t.Errorf("size %d: expected bounds centered on origin, got %v", size, center)
		}
		if bounds.Min() != bounds.Position {
			t.Errorf("size %d: Min should equal Position, got %v vs %v",
				size, bounds.Min(), bounds.Position)
		}
		if want := bounds.Position.Add(bounds.Size); bounds.Max() != want {
			t.Errorf("size %d: expected Max %v, got %v", size, want, bounds.Max())
		}
	}
}
