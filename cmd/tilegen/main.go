// Package main is the entry point for the headless tile mesh exporter.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/driftline/terraclip/internal/config"
	"github.com/driftline/terraclip/internal/export"
	"github.com/driftline/terraclip/internal/logger"
	"github.com/driftline/terraclip/pkg/clipmap"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== TerraClip Tile Exporter ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.DumpConfig() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("dir", config.ConfigDir()))
		return
	}

	var buf export.Buffer
	handles, err := clipmap.Generate(&buf, cfg.Mesh.Size, cfg.Mesh.Levels)
	if err != nil {
		logger.Error("mesh generation failed", zap.Error(err))
		os.Exit(1)
	}

	meshes := buf.Meshes()
	var vertices, indices int
	for _, m := range meshes {
		vertices += len(m.Positions)
		indices += len(m.Indices)
	}
	bounds := meshes[0].Bounds
	logger.Info("meshes generated",
		zap.Int("meshes", len(handles)),
		zap.Int("size", cfg.Mesh.Size),
		zap.Int("vertices", vertices),
		zap.Int("triangles", indices/3),
		zap.Any("bounds_min", bounds.Min()),
		zap.Any("bounds_max", bounds.Max()),
	)

	if err := export.WriteOBJFile(cfg.Export.Path, meshes, cfg.Export.Compress); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("export complete", zap.String("path", cfg.Export.Path))
}
