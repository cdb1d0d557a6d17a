package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

func frame(tick uint64, bodies int, merges int) sim.Frame {
	return sim.Frame{
		Tick:  tick,
		Stats: physics.Diagnostics{Bodies: bodies, TotalMass: 10, KineticEnergy: float64(tick)},
		Last:  physics.TickStats{Merges: merges},
	}
}

func TestRecorder_Every(t *testing.T) {
	r := NewRecorder(3, 0)
	for tick := uint64(1); tick <= 9; tick++ {
		r.OnTick(frame(tick, 4, 1))
	}

	samples := r.Samples()
	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s.Tick != uint64(3*(i+1)) {
			t.Errorf("sample %d: expected tick %d, got %d", i, 3*(i+1), s.Tick)
		}
		if s.Merges != 3 {
			t.Errorf("sample %d: expected merges carried over (3), got %d", i, s.Merges)
		}
	}
}

func TestRecorder_Limit(t *testing.T) {
	r := NewRecorder(1, 5)
	for tick := uint64(1); tick <= 12; tick++ {
		r.OnTick(frame(tick, 2, 0))
	}

	energy := r.Series("energy")
	if len(energy) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(energy))
	}
	if energy[0] != 8 || energy[4] != 12 {
		t.Errorf("expected the latest window 8..12, got %v", energy)
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("expected empty recorder after reset, got %d", r.Len())
	}
}

func TestSeries_UnknownName(t *testing.T) {
	r := NewRecorder(1, 0)
	r.OnTick(frame(1, 1, 0))
	if got := r.Series("temperature"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	for _, name := range SeriesNames {
		if got := r.Series(name); len(got) != 1 {
			t.Errorf("series %s: expected 1 value, got %d", name, len(got))
		}
	}
}

func TestRecorder_ObservesClock(t *testing.T) {
	scene := physics.NewScene(
		physics.MustBody(1, dynamo.V(30, 0), dynamo.V(1, -1)),
		physics.MustBody(1, dynamo.V(-30, 0), dynamo.V(-1, 1)),
	)
	clock, err := sim.New(scene, nil, sim.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRecorder(1, 0)
	clock.AddObserver(r)

	for i := 0; i < 4; i++ {
		clock.Step()
	}
	clock.SetPaused(true)
	clock.Step()

	samples := r.Samples()
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(samples))
	}
	last := samples[3]
	if last.Tick != 4 || last.Bodies != 2 || last.TotalMass != 2 {
		t.Errorf("unexpected last sample %+v", last)
	}
	if last.KineticEnergy <= 0 {
		t.Errorf("expected positive kinetic energy, got %f", last.KineticEnergy)
	}
}

func sampleSeries() []Sample {
	return []Sample{
		{Tick: 1, Bodies: 3, TotalMass: 12, KineticEnergy: 1.5, Momentum: dynamo.V(0.25, -0.5)},
		{Tick: 2, Bodies: 2, TotalMass: 12, KineticEnergy: 4, Momentum: dynamo.V(0.25, -0.5), Merges: 1},
		{Tick: 3, Bodies: 2, TotalMass: 12, KineticEnergy: 2.25, Momentum: dynamo.V(0.25, -0.5)},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "runs"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	id, err := store.Save(RunMetadata{Scene: "solar", Seed: 9, Ticks: 3}, sampleSeries())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(id, "solar_") {
		t.Errorf("unexpected run id %s", id)
	}

	meta, err := store.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.ID != id || meta.Seed != 9 || meta.Ticks != 3 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Summary["merges"] != 1 || meta.Summary["final_bodies"] != 2 || meta.Summary["peak_energy"] != 4 {
		t.Errorf("unexpected summary %v", meta.Summary)
	}

	got, err := store.LoadSeries(id)
	if err != nil {
		t.Fatalf("load series: %v", err)
	}
	want := sampleSeries()
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestStore_List(t *testing.T) {
	store := NewStore(t.TempDir())

	runs, err := store.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("expected no runs, got %v, %v", runs, err)
	}

	first, _ := store.Save(RunMetadata{Scene: "binary"}, nil)
	second, _ := store.Save(RunMetadata{Scene: "cluster"}, sampleSeries())
	if err := os.Mkdir(filepath.Join(store.baseDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("expected oldest first, got %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStore_List_MissingDir(t *testing.T) {
	runs, err := NewStore(filepath.Join(t.TempDir(), "absent")).List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestLoadSeries_SkipsMalformedRows(t *testing.T) {
	store := NewStore(t.TempDir())
	id, err := store.Save(RunMetadata{Scene: "pair"}, sampleSeries())
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.OpenFile(store.SeriesPath(id), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("x,1,2,3,4,5,6\n4,1\n")
	f.Close()

	got, err := store.LoadSeries(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 valid samples, got %d", len(got))
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleSeries()[:1]); err != nil {
		t.Fatal(err)
	}
	want := "tick,bodies,total_mass,kinetic_energy,momentum_x,momentum_y,merges\n" +
		"1,3,12.000000,1.500000,0.250000,-0.500000,0\n"
	if buf.String() != want {
		t.Errorf("unexpected csv:\n%s", buf.String())
	}
}

func TestRunName(t *testing.T) {
	tests := []struct {
		scene string
		want  string
	}{
		{"solar", "solar"},
		{"scenes/my orbit.yaml", "my_orbit"},
		{"", "scene"},
	}
	for _, tt := range tests {
		if got := runName(tt.scene); got != tt.want {
			t.Errorf("runName(%q) = %q, want %q", tt.scene, got, tt.want)
		}
	}
}
