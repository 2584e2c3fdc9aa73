package pitch

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// Set is an ordered sequence of pitches: a scale, a chord, a melody.
//
// Set values are immutable, every operation returns a new Set.
type Set struct {
	values []int
}

// Of returns a set with the given pitches.
func Of(values ...int) Set {
	return Set{values: slices.Clone(values)}
}

// Parse parses whitespace separated note tokens, e.g. "d e fis g".
func Parse(notes string) (Set, error) {
	tokens := strings.Fields(notes)
	values := make([]int, 0, len(tokens))
	for _, token := range tokens {
		v, err := Semitones(token)
		if err != nil {
			return Set{}, err
		}
		values = append(values, v)
	}
	return Set{values: values}, nil
}

// Make builds a set from notation, a pitch, a list of pitches or another
// set. Lists may hold any numeric type, as decoded from yaml or json, but
// every element must be a whole number.
func Make(input any) (Set, error) {
	switch v := input.(type) {
	case Set:
		return Of(v.values...), nil
	case string:
		return Parse(v)
	case []int:
		return Of(v...), nil
	case []float64:
		values := make([]int, len(v))
		for i, f := range v {
			p, ok := toPitch(f)
			if !ok {
				return Set{}, invalidPitch(v, i)
			}
			values[i] = p
		}
		return Set{values: values}, nil
	case []any:
		values := make([]int, len(v))
		for i, x := range v {
			p, ok := toPitch(x)
			if !ok {
				return Set{}, invalidPitch(v, i)
			}
			values[i] = p
		}
		return Set{values: values}, nil
	}

	if p, ok := toPitch(input); ok {
		return Of(p), nil
	}
	return Set{}, &Error{Kind: ErrInvalidPitch, Input: fmt.Sprint(input), Offset: -1}
}

func invalidPitch(list any, index int) error {
	return &Error{Kind: ErrInvalidPitch, Input: fmt.Sprint(list), Offset: index}
}

func toPitch(x any) (int, bool) {
	switch v := x.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case float32:
		return floatPitch(float64(v))
	case float64:
		return floatPitch(v)
	}
	return 0, false
}

func floatPitch(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// Values returns a copy of the pitches.
func (s Set) Values() []int { return slices.Clone(s.values) }

// Len returns the number of pitches.
func (s Set) Len() int { return len(s.values) }

// PitchClasses returns every pitch reduced to 0..11, in order.
func (s Set) PitchClasses() []int {
	classes := make([]int, len(s.values))
	for i, v := range s.values {
		classes[i] = mod(v, 12)
	}
	return classes
}

// Transpose returns the set moved by n semitones.
func (s Set) Transpose(n int) Set {
	values := make([]int, len(s.values))
	for i, v := range s.values {
		values[i] = v + n
	}
	return Set{values: values}
}

// Reverse returns the set in reverse order.
func (s Set) Reverse() Set {
	values := slices.Clone(s.values)
	slices.Reverse(values)
	return Set{values: values}
}

// Equal reports whether both sets hold the same pitches in the same order.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.values, other.values)
}

// Equal reports whether a and b hold the same pitches in the same order.
func Equal(a, b Set) bool { return a.Equal(b) }

// Render returns the notation of the set spelled for the named key.
// An empty key name renders in C major.
func (s Set) Render(key string) (string, error) {
	if key == "" {
		return s.String(), nil
	}
	k, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	return s.RenderKey(k), nil
}

// RenderKey returns the notation of the set spelled for k.
func (s Set) RenderKey(k Key) string {
	return render(s.values, k.Signature())
}

// String returns the notation of the set in C major.
func (s Set) String() string {
	return render(s.values, 0)
}
