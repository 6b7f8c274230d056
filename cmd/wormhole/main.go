package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sketchlab/internal/config"
	"sketchlab/internal/debug"
	"sketchlab/internal/env"
	"sketchlab/internal/graphics"
	"sketchlab/internal/headless"
	"sketchlab/internal/logger"
	"sketchlab/internal/mesh"
	"sketchlab/internal/noise"
	"sketchlab/internal/scene"
	"sketchlab/internal/snapshot"
	"sketchlab/internal/wormhole"
)

// cameraDistance keeps the whole mesh in view at a 45° field of view.
const cameraDistance = 600

type options struct {
	configPath string
	envPath    string
	headless   bool
	hz         int
	ticks      uint64
	png        string
	svg        string
	width      int
	height     int
	vv, v, q   bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", config.ConfigPath, "Sketch config file (YAML).")
	flag.StringVar(&o.envPath, "env", ".env", "Optional KEY=VALUE file with SKETCH_* overrides.")
	flag.BoolVar(&o.headless, "headless", false, "Run without a window.")
	flag.IntVar(&o.hz, "hz", 0, "Tick rate in headless mode (0 = as fast as possible).")
	flag.Uint64Var(&o.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = when the reveal completes).")
	flag.StringVar(&o.png, "png", "", "Headless: write the last frame to this PNG file.")
	flag.StringVar(&o.svg, "svg", "", "Headless: write the last frame's lines to this SVG file.")
	flag.IntVar(&o.width, "width", 0, "Window or image width (0 = monitor width, 1280 headless).")
	flag.IntVar(&o.height, "height", 0, "Window or image height (0 = monitor height, 720 headless).")
	flag.BoolVar(&o.vv, "vv", false, "Debug logging.")
	flag.BoolVar(&o.v, "v", false, "Info logging.")
	flag.BoolVar(&o.q, "q", false, "Errors only.")
	flag.Parse()

	if err := run(o); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(o options) error {
	if err := env.Load(o.envPath); err != nil {
		return err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return err
	}

	log := logger.New(cfg.LogFile, logger.LevelFromFlags(o.vv, o.v, o.q))
	wc := cfg.Wormhole
	jitterOpts := noise.DefaultOptions()
	jitterOpts.Seed = cfg.Seed
	m := mesh.New(wc.Surface(), noise.Jitter{
		Field: noise.New(jitterOpts),
		Step:  wc.JitterStep,
		Scale: wc.JitterScale,
	})
	sketch := wormhole.New(m, log.With("sketch", "wormhole"))
	log.Info("wormhole starting",
		"longitudes", wc.Longitudes, "depths", wc.Depths,
		"ticks", m.Limits().TotalTicks(), "headless", o.headless)

	if o.headless {
		return runHeadless(o, cfg, sketch)
	}

	sc := scene.New(cameraDistance, wc.TiltDegrees, rgba(wc.Stroke), wc.StrokeWeight)
	dbg := debug.New()
	dbg.ShowFPS = cfg.ShowFPS
	dbg.ShowMemAlloc = cfg.ShowMem
	dbg.ShowStatus = wc.ShowProgress
	dbg.Status = sketch.Status

	draw := func() {
		sc.Begin()
		sketch.Tick(sc)
		sc.End()
		dbg.Draw()
	}
	resized := func(w, h int) {
		log.Info("canvas resized", "width", w, "height", h)
	}
	graphics.Run(graphics.Window{
		Title:      "wormhole",
		Width:      o.width,
		Height:     o.height,
		FPS:        wc.FPS,
		Background: rgba(wc.Background),
	}, sc.Update, draw, resized)
	return nil
}

func runHeadless(o options, cfg config.Config, sketch *wormhole.Sketch) error {
	wc := cfg.Wormhole
	w, h := o.width, o.height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}
	proj := snapshot.Projector{
		Width:    float32(w),
		Height:   float32(h),
		Tilt:     wc.TiltDegrees * math32.Pi / 180,
		Distance: cameraDistance,
		Fovy:     45,
	}
	canvas := snapshot.NewCanvas(w, h)
	canvas.SetProjector(proj)
	canvas.SetStroke(wc.Stroke.NRGBA(), wc.StrokeWeight)

	ticks := o.ticks
	if ticks == 0 {
		ticks = uint64(sketch.Mesh.Limits().TotalTicks())
	}
	drawn := sketch.State()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := headless.Run(ctx, headless.Config{Hz: o.hz, Ticks: ticks}, func() error {
		drawn = sketch.State()
		canvas.Clear(wc.Background.NRGBA())
		sketch.Tick(canvas)
		return nil
	})
	if err != nil {
		return err
	}

	if o.png != "" {
		if err := canvas.SavePNG(o.png); err != nil {
			return err
		}
	}
	if o.svg != "" {
		f, err := os.Create(o.svg)
		if err != nil {
			return fmt.Errorf("create svg: %w", err)
		}
		out := snapshot.NewSVG(f, proj, wc.Background.NRGBA(), wc.Stroke.NRGBA(), wc.StrokeWeight)
		sketch.Mesh.Render(out, drawn)
		out.Close()
		if err := f.Close(); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	fmt.Printf("%d ticks, %s\n", sketch.Ticks(), sketch.Status())
	return nil
}

func rgba(c config.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
