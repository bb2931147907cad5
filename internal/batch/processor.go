package batch

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/chewxy/math32"

	"gust/internal/mathutil"
	"gust/internal/postprocess"
	"gust/internal/raster"
	"gust/internal/scene"
	"gust/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	Width       int
	Height      int
	Supersample int
	Frames      int
	Background  color.NRGBA
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Image   string // relative to OutputDir
	Angle   float32
	View    mathutil.Mat4
	Models  []mathutil.Mat4
	Success bool
	Error   string
}

// Run renders cfg.Frames turntable frames of s using a worker pool.
// Frame k turns every object by k·2π/Frames about world Y. The scene is
// only read, so workers share it.
func Run(cfg Config, s *scene.Scene) ([]Result, error) {
	worlds, err := scene.WorldMatrices(s.GameObjects())
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range frameChan {
				results[k] = processFrame(cfg, s, worlds, k)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for k := 0; k < total; k++ {
		frameChan <- k
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results, nil
}

// FrameAngle returns the turntable angle of frame k in radians.
func FrameAngle(k, frames int) float32 {
	if frames <= 0 {
		return 0
	}
	return float32(k) * 2 * math32.Pi / float32(frames)
}

// FrameName is the output file name of frame k.
func FrameName(k int) string {
	return fmt.Sprintf("frame_%04d.webp", k)
}

func processFrame(cfg Config, s *scene.Scene, worlds []mathutil.Mat4, k int) Result {
	angle := FrameAngle(k, cfg.Frames)
	res := Result{
		Frame: k,
		Image: FrameName(k),
		Angle: angle,
		View:  s.View.Matrix(),
	}

	res.Models = make([]mathutil.Mat4, len(worlds))
	for i, w := range worlds {
		res.Models[i] = w.Rotate(angle, mathutil.AxisY)
	}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	rw, rh := cfg.Width*ss, cfg.Height*ss

	img := raster.Render(s, raster.Frame{
		View:       res.View,
		Projection: s.View.Projection(rw, rh),
		Models:     res.Models,
	}, raster.Options{
		Width:       rw,
		Height:      rh,
		Background:  cfg.Background,
		TexResolver: cfg.TexResolver,
	})

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	// Save as WebP
	outPath := filepath.Join(cfg.OutputDir, res.Image)
	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
