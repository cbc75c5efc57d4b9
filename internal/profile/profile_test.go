package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	p := Default()

	accepted := []string{"motorway", "primary", "residential", "service", "living_street"}
	for _, highway := range accepted {
		if !p.Accepts(highway) {
			t.Errorf("Accepts(%q) = false, want true", highway)
		}
	}
	rejected := []string{"footway", "cycleway", "track", "steps", "path", ""}
	for _, highway := range rejected {
		if p.Accepts(highway) {
			t.Errorf("Accepts(%q) = true, want false", highway)
		}
	}
}

func TestLanesFor(t *testing.T) {
	p := Default()

	tests := []struct {
		name    string
		highway string
		tagged  int
		want    int
	}{
		{name: "tagged value wins", highway: "residential", tagged: 3, want: 3},
		{name: "motorway default", highway: "motorway", tagged: -1, want: 3},
		{name: "primary default", highway: "primary", tagged: -1, want: 2},
		{name: "zero tag falls through", highway: "primary", tagged: 0, want: 2},
		{name: "unknown type falls back", highway: "raceway", tagged: -1, want: FallbackLanes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.LanesFor(tt.highway, tt.tagged); got != tt.want {
				t.Errorf("LanesFor(%q, %d) = %d, want %d", tt.highway, tt.tagged, got, tt.want)
			}
		})
	}
}

func TestSpeedFor(t *testing.T) {
	p := Default()

	tests := []struct {
		name    string
		highway string
		tagged  float64
		want    float64
	}{
		{name: "tagged value wins", highway: "residential", tagged: 11.1, want: 11.1},
		{name: "motorway default", highway: "motorway", tagged: -1, want: 33.3},
		{name: "residential default", highway: "residential", tagged: -1, want: 8.3},
		{name: "unknown type falls back", highway: "raceway", tagged: -1, want: FallbackSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.SpeedFor(tt.highway, tt.tagged); got != tt.want {
				t.Errorf("SpeedFor(%q, %f) = %f, want %f", tt.highway, tt.tagged, got, tt.want)
			}
		})
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	yaml := `allowed_types: [residential]
default_speeds:
  residential: 5.6
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if p.Accepts("primary") {
		t.Error("overridden profile still accepts primary")
	}
	if !p.Accepts("residential") {
		t.Error("overridden profile rejects residential")
	}
	if got := p.SpeedFor("residential", -1); got != 5.6 {
		t.Errorf("SpeedFor(residential) = %f, want 5.6", got)
	}
	// Sections missing from the file keep the built-in defaults
	if got := p.LanesFor("residential", -1); got != 1 {
		t.Errorf("LanesFor(residential) = %d, want 1", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing profile file")
	}
}
