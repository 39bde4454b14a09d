// Package scene renders the generated tile mesh in a nested clipmap
// layout.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/terraclip/pkg/clipmap"
)

// Instance places one copy of the tile mesh in the world.
type Instance struct {
	Level    int
	Position mgl32.Vec3
	Scale    float32
}

// Layout returns tile placements for a nested clipmap. The finest level
// is a full 4x4 block of tiles around the origin; every coarser level
// is a 12-tile ring whose inner 2x2 hole is covered by the level below.
// Each level doubles the tile scale, so rings nest exactly.
func Layout(size, levels int) []Instance {
	if size < 1 || levels < 1 {
		return nil
	}

	instances := make([]Instance, 0, 16+12*(levels-1))
	for level := 0; level < levels; level++ {
		scale := float32(int(1) << level)
		step := float32(size) * scale

		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				// Inner 2x2 is covered by the finer level below
				if level > 0 && x >= 1 && x <= 2 && y >= 1 && y <= 2 {
					continue
				}
				instances = append(instances, Instance{
					Level: level,
					Position: mgl32.Vec3{
						(float32(x) - 1.5) * step,
						0,
						(float32(y) - 1.5) * step,
					},
					Scale: scale,
				})
			}
		}
	}
	return instances
}

// Bounds returns the world bounds of the whole layout. Each level spans
// twice the previous one, so the extent is set by the outermost ring
// plus the tile border.
func Bounds(size, levels int, heightScale float32) clipmap.AABB {
	if size < 1 || levels < 1 {
		return clipmap.AABB{}
	}

	scale := float32(int(1) << (levels - 1))
	half := (2*float32(size) + 1) * scale

	height := heightScale
	if height < 1 {
		height = 1
	}

	return clipmap.AABB{
		Position: mgl32.Vec3{-half, 0, -half},
		Size:     mgl32.Vec3{2 * half, height, 2 * half},
	}
}
