// Command spinedemo renders an animated skeleton to a sequence of PNG
// frames with the CPU preview rasterizer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	spine "github.com/gogpu/gg-spine"
	"github.com/gogpu/gg-spine/gpucore"
	"github.com/gogpu/gg-spine/preview"
	"github.com/gogpu/gg-spine/skeleton"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		frames     = flag.Int("frames", -1, "number of frames (overrides config)")
		out        = flag.String("out", "", "output directory (overrides config)")
		verbose    = flag.Bool("v", false, "verbose logging")
		quiet      = flag.Bool("q", false, "hide the progress bar")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			slog.Error("config", "err", err)
			os.Exit(1)
		}
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *out != "" {
		cfg.Out = *out
	}

	level, err := cfg.Level()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	spine.SetLogger(logger)

	if err := run(context.Background(), cfg, logger, !*quiet); err != nil {
		logger.Error("spinedemo failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, logger *slog.Logger, progress bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	if spirv, err := gpucore.CompileShader(); err != nil {
		logger.Warn("mesh shader does not compile", "err", err)
	} else {
		logger.Debug("mesh shader compiled", "spirv_bytes", len(spirv))
	}

	state := skeleton.NewProcedural(sway)
	state.TimeScale = cfg.Speed
	r := spine.NewRendererAsync(ctx, func(context.Context) (*skeleton.Data, error) {
		return demoRig(), nil
	}, spine.WithAnimationState(state))
	r.SetFlip(cfg.FlipX, cfg.FlipY)
	r.OnLoad(func(r *spine.Renderer) {
		logger.Info("rig ready", "slots", len(r.Slots()))
	})

	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := r.Wait(waitCtx); err != nil {
		return errors.Wrap(err, "load rig")
	}

	canvas := preview.NewCanvas(cfg.Width, cfg.Height)
	canvas.SetView(float32(cfg.Width)/2, float32(cfg.Height)/4, cfg.Scale)
	bg := cfg.BackgroundColor().NRGBA()

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(cfg.Frames), "rendering")
	}

	var batch gpucore.Batcher
	dt := 1 / cfg.FPS
	for i := 0; i < cfg.Frames; i++ {
		r.Update(dt)

		canvas.Clear(bg)
		if _, err := r.Draw(canvas); err != nil {
			return errors.Wrapf(err, "frame %d", i)
		}
		batch.Reset()
		if _, err := r.Draw(&batch); err != nil {
			return errors.Wrapf(err, "frame %d", i)
		}
		logger.Debug("frame", "index", i, "triangles", canvas.Triangles(),
			"gpu_draws", len(batch.Draws()), "merged", batch.Merged())

		path := filepath.Join(cfg.Out, fmt.Sprintf("frame_%03d.png", i))
		if err := canvas.SavePNG(path); err != nil {
			return errors.Wrapf(err, "save %s", path)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	logger.Info("done", "frames", cfg.Frames, "out", cfg.Out)
	return nil
}
