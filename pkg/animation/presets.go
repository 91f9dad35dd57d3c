package animation

import (
	"time"

	drifterrors "github.com/driftterm/driftterm/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SpringPreset is the YAML-facing shape of a named spring tuple.
// InitialVelocity and Precision are optional; omitted (zero) fields keep
// SpringConfig's own zero-value behavior (at rest, default precision).
type SpringPreset struct {
	Mass            float64 `yaml:"mass"`
	Stiffness       float64 `yaml:"stiffness"`
	Damping         float64 `yaml:"damping"`
	InitialVelocity float64 `yaml:"initial_velocity"`
	Precision       float64 `yaml:"precision"`
}

func (p SpringPreset) toConfig() SpringConfig {
	return SpringConfig{
		Mass:            p.Mass,
		Stiffness:       p.Stiffness,
		Damping:         p.Damping,
		InitialVelocity: p.InitialVelocity,
		Precision:       p.Precision,
	}
}

// StaggerPreset is the YAML-facing shape of a named stagger default.
type StaggerPreset struct {
	BaseMs float64 `yaml:"base_ms"`
	Origin string  `yaml:"origin"`
}

// Presets is a document of named spring/stagger defaults, loaded via
// gopkg.in/yaml.v3 — configuration for the engine's numeric knobs is kept
// out of Go source so non-developers can tune motion without a rebuild.
type Presets struct {
	Springs   map[string]SpringPreset  `yaml:"springs"`
	Staggers  map[string]StaggerPreset `yaml:"staggers"`
}

// LoadPresets parses a YAML document of named spring/stagger presets.
func LoadPresets(data []byte) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, drifterrors.New("animation.LoadPresets", drifterrors.KindInvalidConfig, err)
	}
	for name, s := range p.Springs {
		if s.Mass <= 0 || s.Stiffness <= 0 || s.Damping <= 0 {
			return nil, drifterrors.New("animation.LoadPresets", drifterrors.KindInvalidConfig, errInvalidExpr("spring:"+name)).WithID(name)
		}
	}
	return &p, nil
}

// Spring looks up a named spring preset, falling back to ok=false if
// absent so callers can decide whether to use a built-in default.
func (p *Presets) Spring(name string) (SpringConfig, bool) {
	if p == nil {
		return SpringConfig{}, false
	}
	s, ok := p.Springs[name]
	if !ok {
		return SpringConfig{}, false
	}
	return s.toConfig(), true
}

// Stagger looks up a named stagger preset and returns a StaggerConfig with
// Base populated from it; origin parsing defaults to StaggerFirst for an
// unrecognized or empty string.
func (p *Presets) Stagger(name string) (StaggerConfig, bool) {
	if p == nil {
		return StaggerConfig{}, false
	}
	s, ok := p.Staggers[name]
	if !ok {
		return StaggerConfig{}, false
	}
	return StaggerConfig{Base: s.BaseMs, Origin: parseOrigin(s.Origin)}, true
}

func parseOrigin(s string) StaggerOrigin {
	switch s {
	case "last":
		return StaggerLast
	case "center":
		return StaggerCenter
	case "index":
		return StaggerIndex
	case "position":
		return StaggerPosition
	default:
		return StaggerFirst
	}
}

// DefaultPresetsYAML is a ready-to-load document covering the four named
// springs (gentle/wobbly/stiff/bouncy), plus a couple of representative
// stagger defaults. Hosts that don't ship their own config file can use this.
const DefaultPresetsYAML = `
springs:
  gentle:
    mass: 1
    stiffness: 120
    damping: 14
  wobbly:
    mass: 1
    stiffness: 180
    damping: 12
  stiff:
    mass: 1
    stiffness: 210
    damping: 20
  bouncy:
    mass: 1
    stiffness: 300
    damping: 10
staggers:
  fan-in:
    base_ms: 50
    origin: first
  fan-out-center:
    base_ms: 80
    origin: center
`

// estimateDurationMs is a convenience used by hosts that load a spring
// preset by name and need a concrete time.Duration for a PropertyValue
// driven timeline entry.
func estimateDurationMs(cfg SpringConfig, from, to float64) time.Duration {
	seconds := EstimateDuration(cfg, from, to)
	return time.Duration(seconds * float64(time.Second))
}
