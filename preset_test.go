package fizzy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPresets = `
presets:
  pop:
    kind: spring
    stiffness: 6
    speed: 10
  soft:
    kind: spring
  fade:
    kind: basic
    duration: 0.3
    curve: easeInOut
  swoop:
    kind: basic
    duration: 0.5
    curve: [0.5, 0, 0.2, 1]
  fling:
    kind: decay
    damping: 0.995
`

func TestLoadPresets(t *testing.T) {
	book, err := LoadPresets([]byte(testPresets))
	if err != nil {
		t.Fatal(err)
	}
	if len(book) != 5 {
		t.Fatalf("got %d presets, want 5", len(book))
	}

	pop, err := book.Lookup("pop")
	if err != nil {
		t.Fatal(err)
	}
	spring, err := PresetIntent(pop, Point{X: 10}, Point{Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if spring.Kind() != KindSpring || spring.Stiffness() != 6 || spring.Speed() != 10 {
		t.Errorf("pop = %v", spring)
	}
	if spring.To() != (Point{X: 10}) || spring.Velocity() != (Point{Y: 1}) {
		t.Errorf("pop to/velocity = %v / %v", spring.To(), spring.Velocity())
	}

	soft, _ := book.Lookup("soft")
	in, err := PresetIntent(soft, Scalar(1), Scalar(0))
	if err != nil {
		t.Fatal(err)
	}
	if in.Stiffness() != DefaultStiffness || in.Speed() != DefaultSpeed {
		t.Errorf("soft = %v, want generic spring defaults", in)
	}

	fade, _ := book.Lookup("fade")
	in, err = PresetIntent(fade, Scalar(0), Scalar(0))
	if err != nil {
		t.Fatal(err)
	}
	if in.Kind() != KindBasic || in.Duration() != 0.3 || in.Curve() != CurveEaseInOut {
		t.Errorf("fade = %v", in)
	}

	swoop, _ := book.Lookup("swoop")
	if swoop.Curve.Kind() != CurveKindCustom {
		t.Errorf("swoop curve = %v", swoop.Curve)
	}

	fling, _ := book.Lookup("fling")
	in, err = PresetIntent(fling, Scalar(0), Scalar(300))
	if err != nil {
		t.Fatal(err)
	}
	if in.Kind() != KindDecay || in.Damping() != 0.995 || in.Velocity() != 300 {
		t.Errorf("fling = %v", in)
	}
}

func TestLoadPresetsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown kind", "presets:\n  x:\n    kind: wobble\n", "unknown animation kind"},
		{"unknown curve", "presets:\n  x:\n    kind: basic\n    curve: bouncy\n", "unknown curve"},
		{"unknown field", "presets:\n  x:\n    kind: basic\n    bounce: 3\n", "bounce"},
		{"bad damping", "presets:\n  x:\n    kind: decay\n    damping: 1.5\n", "invalid intent"},
		{"negative duration", "presets:\n  x:\n    kind: basic\n    duration: -1\n", "invalid intent"},
		{"basic without duration", "presets:\n  x:\n    kind: basic\n    curve: linear\n", "positive duration"},
		{"curve x out of range", "presets:\n  x:\n    kind: basic\n    duration: 1\n    curve: [1.5, 0, -0.5, 1]\n", "outside [0, 1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresets([]byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadPresetsEmpty(t *testing.T) {
	book, err := LoadPresets([]byte("presets: {}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := book.Lookup("pop"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestLoadPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(testPresets), 0o644); err != nil {
		t.Fatal(err)
	}
	book, err := LoadPresetFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := book.Lookup("fling"); err != nil {
		t.Error(err)
	}

	if _, err := LoadPresetFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestShippedPresetsLoad(t *testing.T) {
	book, err := LoadPresetFile(filepath.Join("examples", "presets.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"follow", "wobble", "fade", "swoop", "fling"} {
		if _, err := book.Lookup(name); err != nil {
			t.Error(err)
		}
	}
}
