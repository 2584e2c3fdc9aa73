package pitch

var (
	majorScale = []int{0, 2, 4, 5, 7, 9, 11}
	minorScale = []int{0, 2, 3, 5, 7, 8, 10}
)

// Scale returns the seven notes of the major or natural minor scale
// starting from the tonic, rotated by shift degrees.
func (k Key) Scale(shift int) Set {
	steps := majorScale
	if k.Mode == Minor {
		steps = minorScale
	}
	tonic := k.Tonic.Semitones()
	values := make([]int, len(steps))
	for i, step := range steps {
		values[i] = tonic + step
	}
	return Set{values: rotate(values, shift)}
}

// Chord returns the triad on the tonic (degrees 1, 3 and 5 of the
// scale), rotated by shift chord tones.
func (k Key) Chord(shift int) Set {
	scale := k.Scale(0).values
	triad := []int{scale[0], scale[2], scale[4]}
	return Set{values: rotate(triad, shift)}
}

// rotate moves the first shift values to the end an octave higher, or for
// a negative shift the last values to the front an octave lower, so the
// result stays ascending.
func rotate(values []int, shift int) []int {
	n := len(values)
	rotated := make([]int, n)
	for i := range rotated {
		j := i + shift
		rotated[i] = values[mod(j, n)] + 12*floorDiv(j, n)
	}
	return rotated
}

// Scale returns the scale of the named key rotated by shift degrees.
func Scale(key string, shift int) (Set, error) {
	k, err := ParseKey(key)
	if err != nil {
		return Set{}, err
	}
	return k.Scale(shift), nil
}

// Chord returns the tonic triad of the named key rotated by shift.
func Chord(key string, shift int) (Set, error) {
	k, err := ParseKey(key)
	if err != nil {
		return Set{}, err
	}
	return k.Chord(shift), nil
}
