// Package pitch implements Lilypond style pitch names and the arithmetic
// around them: parsing, key aware spelling, intervals, scales and chords.
//
// A pitch is an integer count of semitones from the reference c (the note
// written without octave marks). c' is 12, c, is -12.
package pitch

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Letters in the order of their pitch classes.
const letters = "cdefgab"

var letterClass = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// Note is a spelled pitch.
type Note struct {
	Letter byte // one of "cdefgab"
	Alter  int  // +1 per sharp, -1 per flat
	Octave int  // octave marks, ' counts +1 and , counts -1
}

// Semitones returns the pitch of the note.
func (n Note) Semitones() int {
	return letterClass[n.Letter] + n.Alter + 12*n.Octave
}

// Class returns the pitch class in 0..11.
func (n Note) Class() int { return mod(n.Semitones(), 12) }

// String returns the canonical token, e.g. "fis'" or "bes,,".
func (n Note) String() string {
	var b strings.Builder
	b.WriteByte(n.Letter)
	b.WriteString(suffix(n.Letter, n.Alter))
	for range iter(n.Octave) {
		b.WriteByte('\'')
	}
	for range iter(-n.Octave) {
		b.WriteByte(',')
	}
	return b.String()
}

// suffix returns the accidental suffix for letter, using the contracted
// single flat for e and a ("es", "as" instead of "ees", "aes").
func suffix(letter byte, alter int) string {
	switch {
	case alter > 0:
		return strings.Repeat("is", alter)
	case alter < 0 && (letter == 'e' || letter == 'a'):
		return "s" + strings.Repeat("es", -alter-1)
	case alter < 0:
		return strings.Repeat("es", -alter)
	}
	return ""
}

// ParseNote parses a single note token: a letter, an optional run of
// accidentals and any number of octave marks. Octave marks are summed,
// so "f,'" is the same as "f".
func ParseNote(token string) (Note, error) {
	// Folding maps some non-ASCII runes onto ASCII letters (ſ to s).
	for i := 0; i < len(token); i++ {
		if token[i] >= utf8.RuneSelf {
			return Note{}, newError(ErrInvalidNote, token, i)
		}
	}
	// Casers keep state, so every call gets its own.
	s := cases.Fold().String(token)
	if s == "" {
		return Note{}, newError(ErrInvalidNote, token, 0)
	}

	var n Note
	switch s[0] {
	case 'h':
		n.Letter = 'b'
	case 'c', 'd', 'e', 'f', 'g', 'a', 'b':
		n.Letter = s[0]
	default:
		return Note{}, newError(ErrInvalidNote, token, 0)
	}

	p := 1
	if (n.Letter == 'e' || n.Letter == 'a') && p < len(s) && s[p] == 's' {
		n.Alter = -1
		p++
	}
	for p+1 < len(s) {
		var step int
		switch s[p : p+2] {
		case "is":
			step = 1
		case "es":
			step = -1
		}
		if step == 0 {
			break
		}
		if n.Alter*step < 0 {
			// mixing sharps and flats, e.g. "ises"
			return Note{}, newError(ErrInvalidNote, token, p)
		}
		n.Alter += step
		p += 2
	}

	for ; p < len(s); p++ {
		switch s[p] {
		case '\'':
			n.Octave++
		case ',':
			n.Octave--
		default:
			return Note{}, newError(ErrInvalidNote, token, p)
		}
	}
	return n, nil
}

// Semitones parses token and returns its pitch.
func Semitones(token string) (int, error) {
	n, err := ParseNote(token)
	if err != nil {
		return 0, err
	}
	return n.Semitones(), nil
}

// Distance returns the signed number of semitones from note a to note b.
func Distance(a, b string) (int, error) {
	from, err := Semitones(a)
	if err != nil {
		return 0, err
	}
	to, err := Semitones(b)
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func floorDiv(v, d int) int {
	q := v / d
	if (v%d != 0) && ((v < 0) != (d < 0)) {
		q--
	}
	return q
}

func iter(n int) []struct{} {
	if n > 0 {
		return make([]struct{}, n)
	}
	return nil
}
