package telemetry

import (
	"sync"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/sim"
)

// Sample is one row of scalar telemetry taken after a tick.
type Sample struct {
	Tick          uint64
	Bodies        int
	TotalMass     float64
	KineticEnergy float64
	Momentum      dynamo.Vec2
	Merges        int
}

// SeriesNames lists the names accepted by Sample.Value.
var SeriesNames = []string{"bodies", "mass", "energy", "momentum", "merges"}

func (s Sample) Value(name string) (float64, bool) {
	switch name {
	case "bodies":
		return float64(s.Bodies), true
	case "mass":
		return s.TotalMass, true
	case "energy":
		return s.KineticEnergy, true
	case "momentum":
		return s.Momentum.Len(), true
	case "merges":
		return float64(s.Merges), true
	}
	return 0, false
}

func SampleFrame(f sim.Frame) Sample {
	return Sample{
		Tick:          f.Tick,
		Bodies:        f.Stats.Bodies,
		TotalMass:     f.Stats.TotalMass,
		KineticEnergy: f.Stats.KineticEnergy,
		Momentum:      f.Stats.Momentum,
		Merges:        f.Last.Merges,
	}
}

// Recorder is a sim.Observer that keeps every Nth tick. Merges on skipped
// ticks are carried into the next kept sample. With a positive limit only
// the most recent samples are kept.
type Recorder struct {
	mu      sync.Mutex
	every   uint64
	limit   int
	merges  int
	samples []Sample
}

func NewRecorder(every uint64, limit int) *Recorder {
	if every == 0 {
		every = 1
	}
	return &Recorder{every: every, limit: limit}
}

func (r *Recorder) OnTick(f sim.Frame) {
	r.mu.Lock()
	r.merges += f.Last.Merges
	if f.Tick%r.every != 0 {
		r.mu.Unlock()
		return
	}
	s := SampleFrame(f)
	s.Merges = r.merges
	r.merges = 0
	r.mu.Unlock()

	r.Record(s)
}

func (r *Recorder) Record(s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, s)
	if r.limit > 0 && len(r.samples) > r.limit {
		n := copy(r.samples, r.samples[len(r.samples)-r.limit:])
		r.samples = r.samples[:n]
	}
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

func (r *Recorder) Samples() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// Series returns one named column, or nil for an unknown name.
func (r *Recorder) Series(name string) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Series(r.samples, name)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = r.samples[:0]
	r.merges = 0
}

func Series(samples []Sample, name string) []float64 {
	if _, ok := (Sample{}).Value(name); !ok {
		return nil
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i], _ = s.Value(name)
	}
	return out
}
