package config

import (
	"math"
	"math/rand"
	"sort"
)

// Presets build a fresh SceneFile on every call so callers may mutate it.
// The seed only matters for randomised scenes.
var Presets = map[string]func(seed int64) *SceneFile{
	"binary": func(int64) *SceneFile {
		return &SceneFile{
			Name: "binary", Scale: 1.5,
			Bodies: []BodyConfig{
				{Name: "alpha", Color: "#ffd166", Mass: 20, Pos: [2]float64{-30, 0}, Vel: [2]float64{0, -1.8}},
				{Name: "beta", Color: "#ef476f", Mass: 20, Pos: [2]float64{30, 0}, Vel: [2]float64{0, 1.8}},
			},
		}
	},
	"pair": func(int64) *SceneFile {
		return &SceneFile{
			Name: "pair", Scale: 1.5,
			Bodies: []BodyConfig{
				{Name: "left", Mass: 1, Pos: [2]float64{30, 0}, Vel: [2]float64{1, -1}},
				{Name: "right", Mass: 1, Pos: [2]float64{-30, 0}, Vel: [2]float64{-1, 1}},
			},
		}
	},
	"solar": func(int64) *SceneFile {
		return &SceneFile{
			Name: "solar", Scale: 0.08, AutoOrbit: true,
			Bodies: []BodyConfig{
				{Name: "sun", Color: "#ffcc00", Mass: 100, Pinned: true},
				{Name: "ember", Color: "#ff8c42", Mass: 4, Pos: [2]float64{600, 0}},
				{Name: "tide", Color: "#4ea8de", Mass: 8, Pos: [2]float64{0, 900}},
				{Name: "dust", Color: "#c77dff", Mass: 12, Pos: [2]float64{-1300, 0}},
			},
		}
	},
	"collision": func(int64) *SceneFile {
		return &SceneFile{
			Name: "collision", Scale: 0.15,
			Bodies: []BodyConfig{
				{Name: "goliath", Color: "#f94144", Mass: 200, Pos: [2]float64{-400, 0}, Vel: [2]float64{1.5, 0.4}},
				{Name: "david", Color: "#90be6d", Mass: 60, Pos: [2]float64{400, 0}, Vel: [2]float64{-1.5, -0.4}},
				{Name: "shard", Color: "#f9c74f", Mass: 2, Pos: [2]float64{-400, 120}, Vel: [2]float64{4, 0}},
				{Name: "splinter", Color: "#577590", Mass: 2, Pos: [2]float64{400, -90}, Vel: [2]float64{-4, 0}},
			},
		}
	},
	"cluster": cluster,
	"triangle": func(int64) *SceneFile {
		const r = 300
		// Each body feels G/r towards the centre, so sqrt(G) keeps the
		// triangle rotating rigidly.
		speed := math.Sqrt(6.67)
		colors := []string{"#06d6a0", "#118ab2", "#ffd166"}
		sf := &SceneFile{Name: "triangle", Scale: 0.3}
		for i := 0; i < 3; i++ {
			a := math.Pi/2 + float64(i)*2*math.Pi/3
			sf.Bodies = append(sf.Bodies, BodyConfig{
				Color: colors[i],
				Mass:  30,
				Pos:   [2]float64{r * math.Cos(a), r * math.Sin(a)},
				Vel:   [2]float64{-speed * math.Sin(a), speed * math.Cos(a)},
			})
		}
		return sf
	},
}

func cluster(seed int64) *SceneFile {
	const n = 30
	rng := rand.New(rand.NewSource(seed))
	sf := &SceneFile{Name: "cluster", Scale: 0.12}
	for i := 0; i < n; i++ {
		r := 100 + rng.Float64()*700
		a := rng.Float64() * 2 * math.Pi
		// slow rigid spin so the cluster does not collapse straight inwards
		spin := 0.004 * r
		sf.Bodies = append(sf.Bodies, BodyConfig{
			Mass: 1 + rng.Float64()*19,
			Pos:  [2]float64{r * math.Cos(a), r * math.Sin(a)},
			Vel:  [2]float64{-spin * math.Sin(a), spin * math.Cos(a)},
		})
	}
	return sf
}

func GetPreset(name string, seed int64) *SceneFile {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build(seed)
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
