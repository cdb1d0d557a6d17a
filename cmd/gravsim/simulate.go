package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/telemetry"
	"github.com/san-kum/gravsim/internal/viz"
)

func newClock(cfg *config.Config, sf *config.SceneFile, logger *slog.Logger) (*sim.Clock, error) {
	bodies, err := sf.Build(cfg.Gravity)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", sf.Name, err)
	}
	return sim.New(physics.NewScene(bodies...), cfg.Integrator(), cfg.ClockConfig(), sim.WithLogger(logger))
}

func viewScale(cfg *config.Config, sf *config.SceneFile) float64 {
	if sf.Scale > 0 {
		return sf.Scale
	}
	return cfg.InitialScale
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, sf, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	// the viewer owns the terminal, so logs go to a file or nowhere
	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "gravsim")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = newLogger(f)
	}

	clock, err := newClock(cfg, sf, logger)
	if err != nil {
		return err
	}
	logger.Info("viewer starting", "scene", sf.Name, "interval", cfg.Interval, "fps", cfg.FPS)

	m := viz.NewModel(clock, viz.Options{
		Title:              sf.Name,
		Scale:              viewScale(cfg, sf),
		FPS:                cfg.FPS,
		SpawnMass:          cfg.SpawnMass,
		SpawnVelocityScale: cfg.SpawnVelocityScale,
		History:            cfg.History,
		Theme:              themeName,
		Logger:             logger,
		Rebuild:            func() ([]*physics.Body, error) { return sf.Build(cfg.Gravity) },
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info("viewer closed", "ticks", clock.TickCount())
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, sf, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	if ticks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", ticks)
	}
	if every < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", every)
	}

	logger := newLogger(os.Stderr)
	clock, err := newClock(cfg, sf, logger)
	if err != nil {
		return err
	}

	rec := telemetry.NewRecorder(uint64(every), 0)
	clock.AddObserver(rec)
	initial := clock.Snapshot()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %s (%d bodies)...\n", sf.Name, initial.Stats.Bodies)
	start := time.Now()

	if realtime {
		ctx, cancel := context.WithTimeout(cmd.Context(), runFor)
		defer cancel()
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		if err := clock.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		for i := 0; i < ticks; i++ {
			clock.Step()
		}
	}

	elapsed := time.Since(start)
	final := clock.Snapshot()
	samples := rec.Samples()
	summary := telemetry.Summarize(samples)

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "ticks: %d\n", final.Tick)
	fmt.Fprintf(out, "bodies: %d -> %d\n", initial.Stats.Bodies, final.Stats.Bodies)
	fmt.Fprintf(out, "mass: %.3f -> %.3f\n", initial.Stats.TotalMass, final.Stats.TotalMass)
	fmt.Fprintf(out, "merges: %.0f\n", summary["merges"])
	fmt.Fprintf(out, "kinetic energy: %.3f -> %.3f\n", initial.Stats.KineticEnergy, final.Stats.KineticEnergy)

	if record {
		st := telemetry.NewStore(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(telemetry.RunMetadata{
			Scene:            sf.Name,
			Seed:             cfg.Seed,
			IntervalMS:       float64(cfg.Interval) / float64(time.Millisecond),
			TimeScale:        cfg.ClockConfig().TimeScale,
			Gravity:          cfg.Gravity,
			MergeRatio:       cfg.MergeRatio,
			ConserveMomentum: cfg.ConserveMomentum,
			Ticks:            final.Tick,
			Summary:          summary,
		}, samples)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}

	if svgOut != "" {
		svg := export.SceneToSVG(final.Bodies, 800, 800)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "scene written to %s\n", svgOut)
	}
	return nil
}
