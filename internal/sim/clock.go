package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

const (
	DefaultInterval = 15 * time.Millisecond
	MaxTimeScale    = 100.0
)

type Config struct {
	Interval  time.Duration
	TimeScale float64
	Paused    bool
}

func DefaultConfig() Config {
	return Config{Interval: DefaultInterval, TimeScale: 1}
}

// Frame is a consistent copy of the clock and scene taken between ticks.
type Frame struct {
	Tick      uint64
	Paused    bool
	TimeScale float64
	Bodies    []physics.BodyView
	Stats     physics.Diagnostics
	Last      physics.TickStats
}

type Observer interface {
	OnTick(f Frame)
}

type ObserverFunc func(Frame)

func (fn ObserverFunc) OnTick(f Frame) { fn(f) }

type Option func(*Clock)

func WithLogger(l *slog.Logger) Option {
	return func(c *Clock) {
		if l != nil {
			c.logger = l
		}
	}
}

// Clock drives the integrator at a fixed interval. Ticks are serialized by
// mu; commands queued with Submit are applied at the start of the next
// firing, paused or not.
type Clock struct {
	mu         sync.Mutex
	scene      *physics.Scene
	integrator *physics.Integrator
	interval   time.Duration
	paused     bool
	timeScale  float64
	tickCount  uint64
	last       physics.TickStats
	pending    []Command
	observers  []Observer
	logger     *slog.Logger
}

func New(scene *physics.Scene, integrator *physics.Integrator, cfg Config, opts ...Option) (*Clock, error) {
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v: %w", cfg.Interval, dynamo.ErrInvalidConfig)
	}
	if scene == nil {
		scene = physics.NewScene()
	}
	if integrator == nil {
		integrator = physics.NewIntegrator()
	}
	if err := integrator.Validate(); err != nil {
		return nil, err
	}

	c := &Clock{
		scene:      scene,
		integrator: integrator,
		interval:   cfg.Interval,
		paused:     cfg.Paused,
		timeScale:  ClampTimeScale(cfg.TimeScale),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClampTimeScale maps NaN and negative values to 0 and caps the rest at
// MaxTimeScale.
func ClampTimeScale(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > MaxTimeScale:
		return MaxTimeScale
	}
	return v
}

func (c *Clock) Interval() time.Duration { return c.interval }

func (c *Clock) AddObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

func (c *Clock) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = paused
}

func (c *Clock) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	return c.paused
}

func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// SetTimeScale takes effect on the next tick.
func (c *Clock) SetTimeScale(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeScale = ClampTimeScale(v)
}

func (c *Clock) TimeScale() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeScale
}

func (c *Clock) TickCount() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickCount
}

// Submit queues a command for the next tick boundary.
func (c *Clock) Submit(cmd Command) {
	if cmd == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, cmd)
}

// Step performs one firing: queued commands are applied, then, unless
// paused, one integrator tick runs and observers are notified. It reports
// whether a tick ran.
func (c *Clock) Step() bool {
	c.mu.Lock()
	c.drainLocked()

	if c.paused {
		c.mu.Unlock()
		return false
	}

	c.last = c.integrator.Tick(c.scene, c.timeScale)
	c.tickCount++

	if c.last.Merges > 0 {
		c.logger.Debug("bodies merged",
			"tick", c.tickCount,
			"merges", c.last.Merges,
			"remaining", c.scene.Len())
	}

	observers := c.observers
	var frame Frame
	if len(observers) > 0 {
		frame = c.frameLocked()
	}
	c.mu.Unlock()

	for _, o := range observers {
		o.OnTick(frame)
	}
	return true
}

// Run fires Step every interval until ctx is done.
func (c *Clock) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info("clock started", "interval", c.interval)
	defer func() { c.logger.Info("clock stopped", "ticks", c.TickCount()) }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			c.Step()
			if elapsed := time.Since(start); elapsed > c.interval {
				c.logger.Warn("tick overran interval", "elapsed", elapsed, "interval", c.interval)
			}
		}
	}
}

func (c *Clock) Snapshot() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

func (c *Clock) frameLocked() Frame {
	return Frame{
		Tick:      c.tickCount,
		Paused:    c.paused,
		TimeScale: c.timeScale,
		Bodies:    c.scene.Snapshot(),
		Stats:     c.scene.Diagnostics(),
		Last:      c.last,
	}
}

func (c *Clock) drainLocked() {
	if len(c.pending) == 0 {
		return
	}
	pending := c.pending
	c.pending = nil
	for _, cmd := range pending {
		cmd.apply(c)
	}
}
