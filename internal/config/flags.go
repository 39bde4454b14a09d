package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSize       = flag.Int("size", 0, "Tile grid size in cells per side")
	flagLevels     = flag.Int("levels", 0, "Number of clipmap detail levels")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagHeightmap  = flag.String("heightmap", "", "Heightmap image path (PNG or TIFF)")
	flagOut        = flag.String("out", "", "Export output path")
	flagCompress   = flag.Bool("compress", false, "Compress exported OBJ with zstd")
	flagWireframe  = flag.Bool("wireframe", false, "Start the viewer in wireframe mode")
	flagDumpConfig = flag.Bool("dump-config", false, "Write the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DumpConfig reports whether --dump-config was given.
func DumpConfig() bool {
	return *flagDumpConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSize > 0 {
		cfg.Mesh.Size = *flagSize
	}
	if *flagLevels > 0 {
		cfg.Mesh.Levels = *flagLevels
	}
	if *flagWindowed {
		cfg.Display.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Display.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
	if *flagHeightmap != "" {
		cfg.Terrain.Heightmap = *flagHeightmap
	}
	if *flagOut != "" {
		cfg.Export.Path = *flagOut
	}
	if *flagCompress {
		cfg.Export.Compress = true
	}
	if *flagWireframe {
		cfg.Terrain.Wireframe = true
	}
}
