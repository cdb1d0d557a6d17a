package telemetry

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/gravsim/internal/dynamo"
)

type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID               string             `json:"id"`
	Scene            string             `json:"scene"`
	Timestamp        time.Time          `json:"timestamp"`
	Seed             int64              `json:"seed"`
	IntervalMS       float64            `json:"interval_ms"`
	TimeScale        float64            `json:"time_scale"`
	Gravity          float64            `json:"gravity"`
	MergeRatio       float64            `json:"merge_ratio"`
	ConserveMomentum bool               `json:"conserve_momentum"`
	Ticks            uint64             `json:"ticks"`
	Summary          map[string]float64 `json:"summary"`
}

var header = []string{"tick", "bodies", "total_mass", "kinetic_energy", "momentum_x", "momentum_y", "merges"}

// Save writes metadata.json and series.csv into a new run directory and
// returns the run ID. meta.ID and meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, samples []Sample) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", runName(meta.Scene), now.UnixNano())
	meta.Timestamp = now
	if meta.Summary == nil {
		meta.Summary = Summarize(samples)
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, samples); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func WriteCSV(out io.Writer, samples []Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatUint(s.Tick, 10),
			strconv.Itoa(s.Bodies),
			strconv.FormatFloat(s.TotalMass, 'f', 6, 64),
			strconv.FormatFloat(s.KineticEnergy, 'f', 6, 64),
			strconv.FormatFloat(s.Momentum.X, 'f', 6, 64),
			strconv.FormatFloat(s.Momentum.Y, 'f', 6, 64),
			strconv.Itoa(s.Merges),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) SeriesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "series.csv")
}

// LoadSeries reads series.csv back. Malformed rows are skipped.
func (s *Store) LoadSeries(runID string) ([]Sample, error) {
	file, err := os.Open(s.SeriesPath(runID))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		s, err := parseRow(rec)
		if err != nil {
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func parseRow(rec []string) (Sample, error) {
	if len(rec) != len(header) {
		return Sample{}, fmt.Errorf("expected %d fields, got %d", len(header), len(rec))
	}
	var (
		s      Sample
		floats [4]float64
		err    error
	)
	if s.Tick, err = strconv.ParseUint(rec[0], 10, 64); err != nil {
		return s, err
	}
	if s.Bodies, err = strconv.Atoi(rec[1]); err != nil {
		return s, err
	}
	for i := range floats {
		if floats[i], err = strconv.ParseFloat(rec[2+i], 64); err != nil {
			return s, err
		}
	}
	if s.Merges, err = strconv.Atoi(rec[6]); err != nil {
		return s, err
	}
	s.TotalMass = floats[0]
	s.KineticEnergy = floats[1]
	s.Momentum = dynamo.V(floats[2], floats[3])
	return s, nil
}

// Summarize reports the final state of a series plus total merges.
func Summarize(samples []Sample) map[string]float64 {
	out := map[string]float64{}
	if len(samples) == 0 {
		return out
	}
	first, last := samples[0], samples[len(samples)-1]
	merges := 0
	peak := 0.0
	for _, s := range samples {
		merges += s.Merges
		if s.KineticEnergy > peak {
			peak = s.KineticEnergy
		}
	}
	out["initial_bodies"] = float64(first.Bodies)
	out["final_bodies"] = float64(last.Bodies)
	out["final_mass"] = last.TotalMass
	out["final_energy"] = last.KineticEnergy
	out["peak_energy"] = peak
	out["merges"] = float64(merges)
	return out
}

// runName turns a preset name or scene path into a directory-safe prefix.
func runName(scene string) string {
	name := strings.TrimSuffix(filepath.Base(scene), filepath.Ext(scene))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, name)
	if name == "" || name == "." || name == "_" {
		return "scene"
	}
	return name
}
