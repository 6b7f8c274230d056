// Package headless runs a sketch tick loop without opening a window.
package headless

import (
	"context"
	"fmt"
	"time"
)

// Config controls the no-window runner.
type Config struct {
	Hz    int    // ticks per second; 0 runs as fast as possible
	Ticks uint64 // stop after this many ticks; 0 runs until ctx is done
}

// Run calls step once per tick until cfg.Ticks is reached, ctx is done or step fails.
// It returns nil after the tick budget, ctx.Err() on cancellation and step's error otherwise.
func Run(ctx context.Context, cfg Config, step func() error) error {
	if cfg.Hz < 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	var tick <-chan time.Time
	if cfg.Hz > 0 {
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		tick = t.C
	}

	var n uint64
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := step(); err != nil {
			return err
		}
		n++
		if cfg.Ticks > 0 && n >= cfg.Ticks {
			return nil
		}
	}
}
