package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/telemetry"
)

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tAUTO-ORBIT")
	for _, name := range config.ListPresets() {
		sf := config.GetPreset(name, 0)
		fmt.Fprintf(w, "%s\t%d\t%v\n", name, len(sf.Bodies), sf.AutoOrbit)
	}
	return w.Flush()
}

func writeScene(cmd *cobra.Command, args []string) error {
	sf := config.GetPreset(args[0], seed)
	if sf == nil {
		return fmt.Errorf("%q (available: %v): %w", args[0], config.ListPresets(), dynamo.ErrUnknownPreset)
	}
	if outFile != "" {
		return config.SaveScene(outFile, sf)
	}
	return yaml.NewEncoder(cmd.OutOrStdout()).Encode(sf)
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if outFile != "" {
		return config.Save(outFile, cfg)
	}
	return yaml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := telemetry.NewStore(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tTICKS\tSCALE\tBODIES\tMERGES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.0f\t%.0f\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.TimeScale,
			run.Summary["final_bodies"],
			run.Summary["merges"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := telemetry.NewStore(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if svgOut != "" && len(samples) < 2 {
		return fmt.Errorf("svg plot needs at least 2 samples, run has %d", len(samples))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "scene: %s\n", meta.Scene)
	fmt.Fprintf(out, "samples: %d\n\n", len(samples))

	for _, name := range series {
		data := telemetry.Series(samples, name)
		if data == nil {
			return fmt.Errorf("unknown series %q (available: %v)", name, telemetry.SeriesNames)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs tick"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	if svgOut != "" && len(series) > 0 {
		svg := export.SeriesToSVG(telemetry.Series(samples, series[0]), 800, 300, "#00ff88")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s written to %s\n", series[0], svgOut)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := telemetry.NewStore(dataDir)
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}
	return telemetry.WriteCSV(cmd.OutOrStdout(), samples)
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := telemetry.NewStore(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
