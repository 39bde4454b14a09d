// Package config handles tool configuration loading and management.
package config

// Config holds all settings shared by the terraclip commands.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Display DisplayConfig `yaml:"display"`
	Terrain TerrainConfig `yaml:"terrain"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig controls clipmap tile generation.
type MeshConfig struct {
	Size   int `yaml:"size"`   // Grid cells per tile side
	Levels int `yaml:"levels"` // Clipmap detail levels
}

// DisplayConfig holds viewer window settings.
type DisplayConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds displacement and debug-view settings.
type TerrainConfig struct {
	Heightmap   string  `yaml:"heightmap"` // PNG/TIFF path; empty uses procedural noise
	HeightScale float32 `yaml:"height_scale"`
	Seed        int64   `yaml:"seed"`
	Wireframe   bool    `yaml:"wireframe"`
	ShowBounds  bool    `yaml:"show_bounds"`
	LevelColors bool    `yaml:"level_colors"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress"` // zstd-compress the OBJ output
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Size:   48,
			Levels: 7,
		},
		Display: DisplayConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Heightmap:   "",
			HeightScale: 24,
			Seed:        1,
			Wireframe:   false,
			ShowBounds:  false,
			LevelColors: false,
		},
		Export: ExportConfig{
			Path:     "tile.obj",
			Compress: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
