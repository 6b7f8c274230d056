package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sketchlab/internal/config"
	"sketchlab/internal/env"
	"sketchlab/internal/headless"
	"sketchlab/internal/lava"
	"sketchlab/internal/lavagame"
	"sketchlab/internal/logger"
	"sketchlab/internal/randx"
	"sketchlab/internal/snapshot"
)

type options struct {
	configPath string
	envPath    string
	headless   bool
	hz         int
	ticks      uint64
	png        string
	vv, v, q   bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", config.ConfigPath, "Sketch config file (YAML).")
	flag.StringVar(&o.envPath, "env", ".env", "Optional KEY=VALUE file with SKETCH_* overrides.")
	flag.BoolVar(&o.headless, "headless", false, "Run without a window.")
	flag.IntVar(&o.hz, "hz", 0, "Tick rate in headless mode (0 = as fast as possible).")
	flag.Uint64Var(&o.ticks, "ticks", 600, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&o.png, "png", "", "Headless: write the last frame to this PNG file.")
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

	lc := cfg.Lava
	p := lava.DefaultParams()
	p.Blobs = lc.Blobs
	p.Sway = lc.Sway
	p.SpawnBelow = lc.SpawnBelow
	p.Trail = lc.Trail.NRGBA()
	sim := lava.New(p, float32(lc.Width), float32(lc.Height), randx.New(cfg.Seed))
	log.Info("lava starting", "blobs", p.Blobs, "width", lc.Width, "height", lc.Height, "headless", o.headless)

	if !o.headless {
		return lavagame.Run(lavagame.New(sim, log.With("sketch", "lava")), "lava", lc.FPS)
	}

	canvas := snapshot.NewCanvas(lc.Width, lc.Height)
	base := p.Trail
	base.A = 255
	canvas.Clear(base)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	respawns := 0
	err = headless.Run(ctx, headless.Config{Hz: o.hz, Ticks: o.ticks}, func() error {
		respawns += sim.Update()
		sim.Draw(canvas)
		return nil
	})
	if err != nil && !(errors.Is(err, context.Canceled) && o.png != "") {
		return err
	}
	log.Info("lava stopped", "respawns", respawns)
	if o.png != "" {
		return canvas.SavePNG(o.png)
	}
	return nil
}
