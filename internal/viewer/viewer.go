// Package viewer implements the interactive terrain viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/driftline/terraclip/internal/config"
	"github.com/driftline/terraclip/internal/engine/camera"
	"github.com/driftline/terraclip/internal/engine/debug"
	"github.com/driftline/terraclip/internal/engine/glmesh"
	"github.com/driftline/terraclip/internal/engine/input"
	"github.com/driftline/terraclip/internal/engine/renderer"
	"github.com/driftline/terraclip/internal/engine/scene"
	"github.com/driftline/terraclip/internal/engine/window"
	"github.com/driftline/terraclip/internal/heightfield"
	"github.com/driftline/terraclip/internal/logger"
)

// boundsColor is the tile bounds overlay color.
var boundsColor = mgl32.Vec3{1.0, 0.85, 0.2}

// Viewer owns the window, render state and scene for the interactive
// tile mesh viewer.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	factory  *glmesh.Factory
	terrain  *scene.Terrain
	lines    *debug.Lines
	shots    *debug.Screenshots
	camera   *camera.OrbitCamera

	dragging         bool
	showBounds       bool
	captureRequested bool
}

// New creates the viewer: window and GL context first, then the GPU
// mesh factory, heightfield and scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:        cfg,
		showBounds: cfg.Terrain.ShowBounds,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "TerraClip",
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context, and the drawable size differs
	// from the window size on high-DPI displays
	drawW, drawH := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:  drawW,
		Height: drawH,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.SetWireframe(cfg.Terrain.Wireframe)

	v.input = input.New()
	v.factory = glmesh.NewFactory()

	field, err := loadField(cfg)
	if err != nil {
		v.window.Close()
		return nil, err
	}

	v.terrain, err = scene.New(v.factory, field, scene.Config{
		Size:        cfg.Mesh.Size,
		Levels:      cfg.Mesh.Levels,
		HeightScale: cfg.Terrain.HeightScale,
		LevelColors: cfg.Terrain.LevelColors,
	})
	if err != nil {
		v.factory.Destroy()
		v.window.Close()
		return nil, fmt.Errorf("failed to build terrain scene: %w", err)
	}

	v.lines, err = debug.NewLines()
	if err != nil {
		v.terrain.Destroy()
		v.factory.Destroy()
		v.window.Close()
		return nil, fmt.Errorf("failed to create line renderer: %w", err)
	}

	v.shots = debug.NewScreenshots("screenshots", "terraclip")

	v.camera = camera.NewOrbitCamera()
	v.camera.FitToBounds(v.terrain.Bounds())

	logger.Info("viewer initialized")
	return v, nil
}

// loadField loads the configured heightmap, or generates a procedural
// field when none is set.
func loadField(cfg *config.Config) (*heightfield.Field, error) {
	if cfg.Terrain.Heightmap != "" {
		field, err := heightfield.Load(cfg.Terrain.Heightmap)
		if err != nil {
			return nil, fmt.Errorf("loading heightmap: %w", err)
		}
		logger.Info("heightmap loaded",
			zap.String("path", cfg.Terrain.Heightmap),
			zap.Int("width", field.Width),
			zap.Int("height", field.Height),
		)
		return field, nil
	}

	field := heightfield.Procedural(512, 512, cfg.Terrain.Seed)
	logger.Info("procedural heightfield generated", zap.Int64("seed", cfg.Terrain.Seed))
	return field, nil
}

// Run starts the main viewer loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		v.handleEvents()
		v.handleHeldKeys(dt)

		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents processes windowing, keyboard and mouse events.
func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := v.window.DrawableSize()
			v.renderer.Resize(w, h)

		case input.EventKeyDown:
			v.handleKey(event.Key)

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				v.dragging = true
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				v.dragging = false
			}

		case input.EventMouseMove:
			if v.dragging {
				v.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
			}

		case input.EventMouseWheel:
			v.camera.HandleZoom(float32(event.WheelY))
		}
	}
}

// handleKey applies single-press actions.
func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_F:
		v.renderer.SetWireframe(!v.renderer.Wireframe())
		logger.Info("wireframe toggled", zap.Bool("on", v.renderer.Wireframe()))
	case sdl.SCANCODE_B:
		v.showBounds = !v.showBounds
	case sdl.SCANCODE_L:
		v.terrain.SetLevelColors(!v.terrain.LevelColors())
	case sdl.SCANCODE_R:
		v.camera.FitToBounds(v.terrain.Bounds())
	case sdl.SCANCODE_F12:
		v.captureRequested = true
	}
}

// handleHeldKeys pans the camera while movement keys are held.
func (v *Viewer) handleHeldKeys(dt float64) {
	var forward, right, up float32
	if v.input.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_E) {
		up++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_Q) {
		up--
	}

	if forward != 0 || right != 0 || up != 0 {
		// Normalize panning to 60 steps per second
		step := float32(dt * 60)
		v.camera.HandleMovement(forward*step, right*step, up*step)
	}
}

// render draws the frame and serves any pending screenshot request.
func (v *Viewer) render() {
	v.renderer.Begin()

	viewProj := v.camera.ProjectionMatrix(v.renderer.Aspect()).Mul4(v.camera.ViewMatrix())
	v.terrain.Render(viewProj)

	if v.showBounds {
		v.lines.Reset()
		tile := v.terrain.TileBounds()
		for _, inst := range v.terrain.Instances() {
			v.lines.Add(debug.PlacedBoxWireframe(tile, inst.Position, inst.Scale, v.cfg.Terrain.HeightScale))
		}
		v.lines.Render(viewProj, boundsColor)
	}

	v.renderer.End()

	if v.captureRequested {
		v.captureRequested = false
		v.screenshot()
	}
}

// screenshot saves the freshly rendered back buffer.
func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.CapturePixels()
	path, err := v.shots.Capture(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.lines != nil {
		v.lines.Destroy()
	}
	if v.terrain != nil {
		v.terrain.Destroy()
	}
	if v.factory != nil {
		v.factory.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
