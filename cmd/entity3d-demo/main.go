// Package main exercises the geometry core without a renderer: it builds
// the canonical 256x256 quad, spins it through a few frames and prints the
// matrices and face windings an external renderer would consume.
package main

import (
	"fmt"
	gomath "math"
	"os"

	"go.uber.org/zap"

	"github.com/arklight/entity3d/internal/config"
	"github.com/arklight/entity3d/internal/engine/model"
	"github.com/arklight/entity3d/internal/engine/scene"
	"github.com/arklight/entity3d/internal/logger"
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

	logger.Info("=== entity3d demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	atlas := scene.NewAtlas(map[string]int{"atlas/default": 1})
	world := scene.New(atlas)

	opts := []model.Option{
		model.WithCompatNormalMatrix(cfg.Model.CompatNormalMatrix),
	}
	if cfg.Model.DefaultTexture != "" {
		opts = append(opts, model.WithDefaultTexture(world.Atlas(), cfg.Model.DefaultTexture))
	}
	quad := model.New(cfg.Model.MaxVertices, opts...)
	defer quad.Destroy()

	// Canonical quad: 4 corner points expanded to 6 vertices by index
	positions := []float32{0, 0, 256, 0, 0, 256, 256, 256}
	uvs := []float32{0, 0, 1, 0, 0, 1, 1, 1}
	if err := quad.AddVertices(positions, uvs, model.WithIndices([]int{0, 2, 1, 2, 3, 1})); err != nil {
		return fmt.Errorf("building quad: %w", err)
	}
	world.Add(quad)

	faces, err := quad.FaceCount()
	if err != nil {
		return err
	}
	logger.Info("quad built", zap.Int("faces", faces))

	for i := 0; i < faces; i++ {
		f, err := quad.Face(i)
		if err != nil {
			return err
		}
		logger.Info("face",
			zap.Int("index", i),
			zap.Bool("ccw", f.CounterClockwise),
		)
	}

	// Spin the quad for a few frames, one authoritative tick per frame
	const frames = 4
	for frame := 0; frame < frames; frame++ {
		quad.Transform().SetX(float32(frame))
		quad.RotateZ(float32(gomath.Pi / 8))

		world.Tick(float32(frame), 1)

		m := quad.TransformMatrix()
		logger.Info("frame",
			zap.Int("n", frame),
			zap.Float32("tx", m[12]),
			zap.Float32("r00", m[0]),
			zap.Float32("r01", m[1]),
		)
	}

	return nil
}
