package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fallbacks applied when a way carries no usable tag and its highway type
// has no entry in the default tables.
const (
	FallbackSpeed = 13.9 // m/s, 50 km/h
	FallbackLanes = 1
)

// Profile defines which highway types become roads and which lane counts
// and speed limits are assumed when the way tags don't say. Speeds are in
// m/s. The built-in tables follow typical German urban limits.
type Profile struct {
	// AllowedTypes lists the highway tag values that are imported.
	// Everything else (footways, cycleways, tracks, ...) is dropped.
	AllowedTypes []string `yaml:"allowed_types,omitempty"`
	// DefaultLanes maps highway type to assumed lane count
	DefaultLanes map[string]int `yaml:"default_lanes,omitempty"`
	// DefaultSpeeds maps highway type to assumed speed limit in m/s
	DefaultSpeeds map[string]float64 `yaml:"default_speeds,omitempty"`

	allowed map[string]struct{}
}

// Default returns the built-in road profile
func Default() *Profile {
	p := &Profile{
		AllowedTypes: []string{
			"motorway", "motorway_link",
			"trunk", "trunk_link",
			"primary", "primary_link",
			"secondary", "secondary_link",
			"tertiary", "tertiary_link",
			"residential",
			"living_street",
			"unclassified",
			"service",
		},
		DefaultLanes: map[string]int{
			"motorway":       3,
			"motorway_link":  1,
			"trunk":          2,
			"trunk_link":     1,
			"primary":        2,
			"primary_link":   1,
			"secondary":      2,
			"secondary_link": 1,
			"tertiary":       1,
			"tertiary_link":  1,
			"residential":    1,
			"living_street":  1,
			"unclassified":   1,
			"service":        1,
		},
		DefaultSpeeds: map[string]float64{
			"motorway":       33.3, // 120 km/h
			"motorway_link":  22.2, // 80 km/h
			"trunk":          27.8, // 100 km/h
			"trunk_link":     16.7, // 60 km/h
			"primary":        13.9, // 50 km/h
			"primary_link":   11.1, // 40 km/h
			"secondary":      13.9, // 50 km/h
			"secondary_link": 11.1, // 40 km/h
			"tertiary":       13.9, // 50 km/h
			"tertiary_link":  11.1, // 40 km/h
			"residential":    8.3,  // 30 km/h
			"living_street":  5.6,  // 20 km/h
			"unclassified":   13.9, // 50 km/h
			"service":        5.6,  // 20 km/h
		},
	}
	p.compile()
	return p
}

// Load reads a profile YAML file. Sections missing from the file keep the
// built-in defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	p := Default()
	var override Profile
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	if len(override.AllowedTypes) > 0 {
		p.AllowedTypes = override.AllowedTypes
	}
	if len(override.DefaultLanes) > 0 {
		p.DefaultLanes = override.DefaultLanes
	}
	if len(override.DefaultSpeeds) > 0 {
		p.DefaultSpeeds = override.DefaultSpeeds
	}
	p.compile()

	return p, nil
}

func (p *Profile) compile() {
	p.allowed = make(map[string]struct{}, len(p.AllowedTypes))
	for _, t := range p.AllowedTypes {
		p.allowed[t] = struct{}{}
	}
}

// Accepts reports whether a way with the given highway type is imported
func (p *Profile) Accepts(highway string) bool {
	_, ok := p.allowed[highway]
	return ok
}

// LanesFor resolves the lane count for a way: the tagged value when it is
// positive, else the per-type default, else FallbackLanes.
func (p *Profile) LanesFor(highway string, tagged int) int {
	if tagged > 0 {
		return tagged
	}
	if lanes, ok := p.DefaultLanes[highway]; ok {
		return lanes
	}
	return FallbackLanes
}

// SpeedFor resolves the speed limit in m/s for a way: the tagged value
// when it is positive, else the per-type default, else FallbackSpeed.
func (p *Profile) SpeedFor(highway string, tagged float64) float64 {
	if tagged > 0 {
		return tagged
	}
	if speed, ok := p.DefaultSpeeds[highway]; ok {
		return speed
	}
	return FallbackSpeed
}
