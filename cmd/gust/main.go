package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"gust/internal/batch"
	"gust/internal/config"
	"gust/internal/scene"
	"gust/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Scene description (JSON)")
	modelPath := flag.String("model", "", "Single .obj model, framed automatically")
	texPath := flag.String("texture", "", "Texture for -model")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 512)")
	height := flag.Int("height", 0, "Frame height in pixels (default: width)")
	supersample := flag.Int("ss", 0, "Supersampling factor (default: 2)")
	frames := flag.Int("frames", 0, "Turntable frames (default: 36)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 60)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	fovSet := *fov > 0 || cfg.FOV > 0

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:       *scenePath,
		Model:       *modelPath,
		Texture:     *texPath,
		OutputDir:   *outputDir,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Frames:      *frames,
		FOV:         float32(*fov),
		Workers:     *workers,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Use -scene, -model or config.json.\n", err)
		os.Exit(1)
	}

	// Load scene
	var s *scene.Scene
	var err error
	if cfg.Scene != "" {
		s, err = scene.Load(cfg.Scene)
	} else {
		s, err = scene.FromModel(cfg.Model, cfg.Texture)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	// A scene's own camera keeps its field of view unless one was asked for.
	if cfg.Model != "" {
		s.View.FOV = cfg.FOV
		if err := s.Frame(); err != nil {
			fmt.Fprintf(os.Stderr, "Error framing scene: %v\n", err)
			os.Exit(1)
		}
	} else if fovSet {
		s.View.FOV = cfg.FOV
	}

	objs := s.GameObjects()
	tris := 0
	for _, g := range objs {
		tris += len(g.Mesh.Triangles)
	}

	texCache := texture.NewCache()

	// Print summary
	fmt.Printf("gust turntable renderer → WebP\n")
	fmt.Printf("Objects: %d (%d triangles), Lights: %d\n", len(objs), tris, len(s.Lights()))
	fmt.Printf("Frames: %d at %dx%d (x%d), Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	bg := cfg.Background
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		TexResolver: texCache,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		Background:  color.NRGBA{R: bg[0], G: bg[1], B: bg[2], A: bg[3]},
		Workers:     cfg.Workers,
	}

	results, err := batch.Run(batchCfg, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d, Textures: %d\n", success, len(results), texCache.Len())

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Image, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
