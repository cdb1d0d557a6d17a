package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

// SceneFile is the on-disk description of a starting scene.
type SceneFile struct {
	Name  string  `yaml:"name"`
	Scale float64 `yaml:"scale,omitempty"`

	// AutoOrbit gives every body at rest a circular orbit around the first
	// body.
	AutoOrbit bool         `yaml:"auto_orbit,omitempty"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Name   string     `yaml:"name,omitempty"`
	Color  string     `yaml:"color,omitempty"`
	Mass   float64    `yaml:"mass"`
	Pos    [2]float64 `yaml:"pos,flow"`
	Vel    [2]float64 `yaml:"vel,flow"`
	Pinned bool       `yaml:"pinned,omitempty"`
}

func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if sf.Name == "" {
		sf.Name = path
	}
	return &sf, nil
}

func SaveScene(path string, sf *SceneFile) error {
	data, err := yaml.Marshal(sf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveScene returns the preset called name, or loads name as a scene
// file when no preset matches.
func ResolveScene(name string, seed int64) (*SceneFile, error) {
	if sf := GetPreset(name, seed); sf != nil {
		return sf, nil
	}
	sf, err := LoadScene(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%q (available: %v): %w", name, ListPresets(), dynamo.ErrUnknownPreset)
	}
	return sf, err
}

// Build validates the scene and returns fresh bodies. g is the gravity
// constant used for AutoOrbit speeds.
func (sf *SceneFile) Build(g float64) ([]*physics.Body, error) {
	if len(sf.Bodies) == 0 {
		return nil, fmt.Errorf("%s: %w", sf.Name, dynamo.ErrEmptyScene)
	}

	configs := make([]BodyConfig, len(sf.Bodies))
	copy(configs, sf.Bodies)
	if sf.AutoOrbit {
		setOrbitalVelocities(configs, g)
	}

	bodies := make([]*physics.Body, 0, len(configs))
	for i, bc := range configs {
		opts := []physics.BodyOption{physics.Named(bc.Name)}
		if bc.Color != "" {
			opts = append(opts, physics.Colored(bc.Color))
		}
		if bc.Pinned {
			opts = append(opts, physics.Pinned())
		}
		b, err := physics.NewBody(bc.Mass, dynamo.V(bc.Pos[0], bc.Pos[1]), dynamo.V(bc.Vel[0], bc.Vel[1]), opts...)
		if err != nil {
			return nil, &dynamo.BodyError{Index: i, Name: bc.Name, Wrapped: err}
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// setOrbitalVelocities treats the first body as the centre. The toy force
// law falls off as 1/r, so the circular speed sqrt(G*M/m) does not depend on
// the radius.
func setOrbitalVelocities(bodies []BodyConfig, g float64) {
	if len(bodies) < 2 {
		return
	}
	central := bodies[0]
	if !(central.Mass > 0) {
		return
	}
	center := dynamo.V(central.Pos[0], central.Pos[1])
	base := dynamo.V(central.Vel[0], central.Vel[1])

	for i := 1; i < len(bodies); i++ {
		b := &bodies[i]
		if b.Vel != [2]float64{} || !(b.Mass > 0) {
			continue
		}
		r := dynamo.Difference(center, dynamo.V(b.Pos[0], b.Pos[1]))
		dist := r.Len()
		if dist == 0 {
			continue
		}
		speed := math.Sqrt(g * central.Mass / b.Mass)
		v := base.Add(r.Perp().Div(dist).Mul(speed))
		b.Vel = [2]float64{v.X, v.Y}
	}
}
