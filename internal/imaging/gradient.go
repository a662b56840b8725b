package imaging

import (
	"fmt"
	"math"
	"sort"
)

// Gradient maps a position along a sequence to a color.
//
// index is the 0-based position and total is the sequence length, so callers
// normally pass 0 <= index < total. Implementations must be pure: the same
// arguments always produce the same color.
type Gradient interface {
	ColorAt(index, total float64) RGBColor
}

// GradientFunc adapts an ordinary function to the Gradient interface.
type GradientFunc func(index, total float64) RGBColor

// ColorAt calls f(index, total).
func (f GradientFunc) ColorAt(index, total float64) RGBColor {
	return f(index, total)
}

// Lerp linearly interpolates from a (t=0) to b (t=1) using saturating
// arithmetic. t is clamped to [0, 1].
func Lerp(a, b RGBColor, t float64) RGBColor {
	t = clampUnit(t)
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Linear returns a gradient that blends from a at index 0 towards b as index
// approaches total.
func Linear(a, b RGBColor) GradientFunc {
	return func(index, total float64) RGBColor {
		if total <= 0 {
			return a
		}
		return Lerp(a, b, index/total)
	}
}

// Alternating returns a gradient that paints even indices a and odd indices b
// with no blending in between.
func Alternating(a, b RGBColor) GradientFunc {
	return func(index, _ float64) RGBColor {
		t := 1.0
		if math.Mod(index, 2) == 0 {
			t = 0
		}
		return Lerp(a, b, t)
	}
}

// Lab returns a gradient that blends a towards b in CIE L*a*b* space, which
// keeps perceived brightness steadier than Linear along long paths.
func Lab(a, b RGBColor) GradientFunc {
	ca, cb := toColorful(a), toColorful(b)
	return func(index, total float64) RGBColor {
		if total <= 0 {
			return a
		}
		return fromColorful(ca.BlendLab(cb, clampUnit(index/total)))
	}
}

func clampUnit(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// Gradient kinds accepted by NewGradient.
const (
	KindLinear      = "linear"
	KindAlternating = "alternating"
	KindLab         = "lab"
)

// GradientSpec describes a two-color gradient by kind and endpoint colors.
type GradientSpec struct {
	Name string   `json:"name"`
	Kind string   `json:"kind"`
	From RGBColor `json:"from"`
	To   RGBColor `json:"to"`
}

// NewGradient builds the Gradient described by spec.
func NewGradient(spec GradientSpec) (Gradient, error) {
	switch spec.Kind {
	case KindLinear, "":
		return Linear(spec.From, spec.To), nil
	case KindAlternating:
		return Alternating(spec.From, spec.To), nil
	case KindLab:
		return Lab(spec.From, spec.To), nil
	default:
		return nil, fmt.Errorf("unknown gradient kind: %s", spec.Kind)
	}
}

// DefaultGradient is the preset used when no gradient is requested.
const DefaultGradient = "blue-cyan"

// Presets holds the named gradients a caller can select by name.
//
// A Presets value is not safe for concurrent mutation; build it once at
// startup and share it read-only.
type Presets map[string]GradientSpec

// BuiltinPresets returns a fresh copy of the built-in gradient presets.
func BuiltinPresets() Presets {
	return Presets{
		"red-green":             {Name: "red-green", Kind: KindLinear, From: Red, To: Green},
		"blue-cyan":             {Name: "blue-cyan", Kind: KindLinear, From: Blue, To: Cyan},
		"blue-cyan-alternating": {Name: "blue-cyan-alternating", Kind: KindAlternating, From: Blue, To: Cyan},
	}
}

// Add registers spec under spec.Name, replacing any preset with that name.
func (p Presets) Add(spec GradientSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("gradient preset needs a name")
	}
	if _, err := NewGradient(spec); err != nil {
		return fmt.Errorf("gradient preset %q: %w", spec.Name, err)
	}
	p[spec.Name] = spec
	return nil
}

// Lookup returns the gradient registered under name.
func (p Presets) Lookup(name string) (Gradient, error) {
	spec, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("unknown gradient preset: %s", name)
	}
	return NewGradient(spec)
}

// List returns every preset sorted by name.
func (p Presets) List() []GradientSpec {
	specs := make([]GradientSpec, 0, len(p))
	for _, spec := range p {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}
