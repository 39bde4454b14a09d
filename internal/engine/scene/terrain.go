package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/driftline/terraclip/internal/engine/glmesh"
	"github.com/driftline/terraclip/internal/engine/shader"
	"github.com/driftline/terraclip/internal/heightfield"
	"github.com/driftline/terraclip/internal/logger"
	"github.com/driftline/terraclip/pkg/clipmap"
)

// Config holds terrain scene settings.
type Config struct {
	Size        int
	Levels      int
	HeightScale float32
	LevelColors bool
}

// terrainColor is the flat surface color outside level-color mode.
var terrainColor = mgl32.Vec3{0.45, 0.55, 0.35}

// levelPalette colors each clipmap level when level coloring is on.
var levelPalette = []mgl32.Vec3{
	{0.90, 0.30, 0.20},
	{0.90, 0.60, 0.20},
	{0.90, 0.90, 0.30},
	{0.40, 0.80, 0.30},
	{0.30, 0.70, 0.90},
	{0.40, 0.40, 0.90},
	{0.70, 0.40, 0.90},
	{0.90, 0.40, 0.70},
}

// Terrain renders one generated tile mesh across all layout instances.
type Terrain struct {
	factory   *glmesh.Factory
	program   *shader.Program
	tile      clipmap.Handle
	instances []Instance
	heightTex uint32
	cfg       Config
	worldSize float32
	lightDir  mgl32.Vec3
}

// New generates the tile mesh through the GPU factory, uploads the
// heightfield texture and compiles the terrain program.
func New(factory *glmesh.Factory, field *heightfield.Field, cfg Config) (*Terrain, error) {
	handles, err := clipmap.Generate(factory, cfg.Size, cfg.Levels)
	if err != nil {
		return nil, fmt.Errorf("generating tile mesh: %w", err)
	}

	program, err := shader.Compile(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling terrain shader: %w", err)
	}

	t := &Terrain{
		factory:   factory,
		program:   program,
		tile:      handles[0],
		instances: Layout(cfg.Size, cfg.Levels),
		cfg:       cfg,
		worldSize: Bounds(cfg.Size, cfg.Levels, cfg.HeightScale).Size.X(),
		lightDir:  mgl32.Vec3{-0.45, -0.8, -0.4}.Normalize(),
	}
	t.uploadHeightfield(field)

	logger.Info("terrain scene ready",
		zap.Int("size", cfg.Size),
		zap.Int("levels", cfg.Levels),
		zap.Int("tiles", len(t.instances)),
	)
	return t, nil
}

// uploadHeightfield stores the elevation samples as an R32F texture the
// vertex shader displaces against.
func (t *Terrain) uploadHeightfield(field *heightfield.Field) {
	gl.GenTextures(1, &t.heightTex)
	gl.BindTexture(gl.TEXTURE_2D, t.heightTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F,
		int32(field.Width), int32(field.Height),
		0, gl.RED, gl.FLOAT, unsafe.Pointer(&field.Samples[0]))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Render draws every tile instance with the shared mesh.
func (t *Terrain) Render(viewProj mgl32.Mat4) {
	t.program.Use()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.heightTex)
	gl.Uniform1i(t.program.Uniform("uHeightmap"), 0)

	gl.UniformMatrix4fv(t.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform1f(t.program.Uniform("uHeightScale"), t.cfg.HeightScale)
	gl.Uniform1f(t.program.Uniform("uWorldSize"), t.worldSize)
	gl.Uniform3f(t.program.Uniform("uLightDir"), t.lightDir.X(), t.lightDir.Y(), t.lightDir.Z())

	for _, inst := range t.instances {
		color := terrainColor
		if t.cfg.LevelColors {
			color = levelPalette[inst.Level%len(levelPalette)]
		}
		gl.Uniform3f(t.program.Uniform("uColor"), color.X(), color.Y(), color.Z())
		gl.Uniform2f(t.program.Uniform("uOffset"), inst.Position.X(), inst.Position.Z())
		gl.Uniform1f(t.program.Uniform("uScale"), inst.Scale)

		t.factory.Draw(t.tile)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// SetLevelColors toggles per-level ring coloring.
func (t *Terrain) SetLevelColors(on bool) {
	t.cfg.LevelColors = on
}

// LevelColors reports whether per-level coloring is active.
func (t *Terrain) LevelColors() bool {
	return t.cfg.LevelColors
}

// Instances returns the tile placements, for debug overlays.
func (t *Terrain) Instances() []Instance {
	return t.instances
}

// TileBounds returns the local bounds of the shared tile mesh.
func (t *Terrain) TileBounds() clipmap.AABB {
	b, _ := t.factory.Bounds(t.tile)
	return b
}

// Bounds returns the world bounds of the whole layout.
func (t *Terrain) Bounds() clipmap.AABB {
	return Bounds(t.cfg.Size, t.cfg.Levels, t.cfg.HeightScale)
}

// Destroy releases GL resources owned by the terrain.
func (t *Terrain) Destroy() {
	if t.heightTex != 0 {
		gl.DeleteTextures(1, &t.heightTex)
	}
	t.program.Delete()
}
