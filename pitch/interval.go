package pitch

import (
	"math"
	"strconv"
	"strings"
)

// Quality of an interval.
type Quality byte

const (
	QualityPerfect    = Quality('P')
	QualityMajor      = Quality('M')
	QualityMinor      = Quality('m')
	QualityAugmented  = Quality('A')
	QualityDiminished = Quality('d')
)

// Semitones of each diatonic degree in the major scale.
var majorDegrees = [7]int{0, 2, 4, 5, 7, 9, 11}

// maxNumber is the largest diatonic number whose size fits in an int.
const maxNumber = (math.MaxInt - 11) / 12 * 7

// Interval is a named diatonic distance, e.g. "m3", "-P4", "TT".
type Interval struct {
	Quality  Quality
	Number   int // diatonic number, 1 is unison, 8 the octave
	Tritone  bool
	Negative bool
}

// ParseInterval parses an optional "-", then "TT", a quality letter
// followed by a number, or a bare number meaning a perfect interval.
func ParseInterval(text string) (Interval, error) {
	var iv Interval
	s := text
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		iv.Negative = true
		s = rest
	}
	if s == "TT" {
		iv.Tritone = true
		return iv, nil
	}

	iv.Quality = QualityPerfect
	if s != "" {
		switch q := Quality(s[0]); q {
		case QualityPerfect, QualityMajor, QualityMinor, QualityAugmented, QualityDiminished:
			iv.Quality = q
			s = s[1:]
		}
	}

	offset := len(text) - len(s)
	if s == "" || s[0] < '1' || s[0] > '9' {
		return Interval{}, newError(ErrInvalidInterval, text, offset)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Interval{}, &Error{Kind: ErrInvalidInterval, Input: text, Offset: offset, Err: err}
	}
	if n > maxNumber {
		return Interval{}, newError(ErrInvalidInterval, text, offset)
	}
	iv.Number = n
	return iv, nil
}

// perfectType reports whether the degree is a unison, fourth or fifth
// (or a compound of those).
func perfectType(number int) bool {
	switch (number - 1) % 7 {
	case 0, 3, 4:
		return true
	}
	return false
}

// Semitones returns the signed size of the interval.
func (iv Interval) Semitones() int {
	size := 6
	if !iv.Tritone {
		if iv.Number < 1 {
			return 0
		}
		degree := (iv.Number - 1) % 7
		size = majorDegrees[degree] + 12*((iv.Number-1)/7)
		switch iv.Quality {
		case QualityMinor:
			size--
		case QualityAugmented:
			size++
		case QualityDiminished:
			if perfectType(iv.Number) {
				size--
			} else {
				size -= 2
			}
		}
	}
	if iv.Negative {
		return -size
	}
	return size
}

func (iv Interval) String() string {
	var s string
	if iv.Tritone {
		s = "TT"
	} else {
		s = string(iv.Quality) + strconv.Itoa(iv.Number)
	}
	if iv.Negative {
		return "-" + s
	}
	return s
}

// IntervalSemitones returns the signed semitone size of a named interval.
func IntervalSemitones(text string) (int, error) {
	iv, err := ParseInterval(text)
	if err != nil {
		return 0, err
	}
	return iv.Semitones(), nil
}
