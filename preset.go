package fizzy

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by PresetBook.Lookup.
var ErrUnknownPreset = errors.New("fizzy: unknown preset")

// Preset holds the value-independent parameters of an intent so they can be
// tuned in a file. Basic presets need a positive duration; a missing curve is
// CurveDefault. Zero spring and decay parameters fall back to the
// GenericSpring and GenericDecay defaults.
//
//	presets:
//	  pop:
//	    kind: spring
//	    stiffness: 12
//	    speed: 4
//	  fade:
//	    kind: basic
//	    duration: 0.3
//	    curve: easeInOut
//	  swoop:
//	    kind: basic
//	    duration: 0.5
//	    curve: [0.5, 0, 0.2, 1]
//	  fling:
//	    kind: decay
//	    damping: 0.995
type Preset struct {
	Kind      Kind    `yaml:"kind"`
	Duration  float32 `yaml:"duration,omitempty"`
	Curve     Curve   `yaml:"curve,omitempty"`
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Speed     float64 `yaml:"speed,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
}

// PresetBook is a set of named presets.
type PresetBook map[string]Preset

type presetFile struct {
	Presets PresetBook `yaml:"presets"`
}

// MarshalYAML writes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind by name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseKind(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// LoadPresets parses a presets document. Unknown fields are rejected.
func LoadPresets(data []byte) (PresetBook, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f presetFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if f.Presets == nil {
		f.Presets = PresetBook{}
	}
	for name, p := range f.Presets {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return f.Presets, nil
}

// LoadPresetFile reads and parses the presets file at path.
func LoadPresetFile(path string) (PresetBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	return LoadPresets(data)
}

// Lookup returns the preset called name.
func (b PresetBook) Lookup(name string) (Preset, error) {
	p, ok := b[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// validate checks p against a scalar intent, which exercises the same rules
// as every other value type.
func (p Preset) validate() error {
	_, err := PresetIntent(p, Scalar(0), Scalar(0))
	return err
}

// PresetIntent builds an intent from p. to is ignored by decay presets and
// velocity by basic presets.
func PresetIntent[V Value[V]](p Preset, to, velocity V) (Intent[V], error) {
	var in Intent[V]
	switch p.Kind {
	case KindBasic:
		if !(p.Duration > 0) {
			return Intent[V]{}, fmt.Errorf("%w: basic preset needs a positive duration", ErrInvalidIntent)
		}
		in = Basic(to, p.Duration, p.Curve)
	case KindSpring:
		in = Spring(to, velocity, or(p.Stiffness, DefaultStiffness), or(p.Speed, DefaultSpeed))
	case KindDecay:
		in = Decay(velocity, or(p.Damping, DefaultDamping))
	default:
		return Intent[V]{}, fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
	}
	if err := in.Validate(); err != nil {
		return Intent[V]{}, err
	}
	return in, nil
}

func or(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
