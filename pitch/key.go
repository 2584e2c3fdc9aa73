package pitch

import (
	"strings"

	"golang.org/x/exp/maps"
)

// Order in which accidentals are added to a signature.
const (
	sharpOrder = "fcgdaeb"
	flatOrder  = "beadgcf"
)

// Signature is a key signature as a position on the circle of fifths:
// positive values count sharps, negative values count flats.
type Signature int

// Accidentals returns the signature's accidentals in the order they are
// written, e.g. ["f#", "c#"] for D major or ["bb", "eb"] for B-flat major.
func (s Signature) Accidentals() []string {
	accidentals := []string{}
	for i := 0; i < int(s); i++ {
		accidentals = append(accidentals, string(sharpOrder[i])+"#")
	}
	for i := 0; i < -int(s); i++ {
		accidentals = append(accidentals, string(flatOrder[i])+"b")
	}
	return accidentals
}

// Notes returns the signature's accidentals as note names without octave.
func (s Signature) Notes() []Note {
	var notes []Note
	for i := 0; i < int(s); i++ {
		notes = append(notes, Note{Letter: sharpOrder[i], Alter: 1})
	}
	for i := 0; i < -int(s); i++ {
		notes = append(notes, Note{Letter: flatOrder[i], Alter: -1})
	}
	return notes
}

// Alter returns how the signature alters letter: +1, -1 or 0.
func (s Signature) Alter(letter byte) int {
	return alterations[s][letter]
}

// Alterations returns letter to alteration for every altered letter.
func (s Signature) Alterations() map[byte]int {
	return maps.Clone(alterations[s])
}

var alterations = func() map[Signature]map[byte]int {
	all := map[Signature]map[byte]int{}
	for s := Signature(-7); s <= 7; s++ {
		all[s] = makeAlterationMap(s)
	}
	return all
}()

func makeAlterationMap(s Signature) map[byte]int {
	acc := make(map[byte]int)
	for _, n := range s.Notes() {
		acc[n.Letter] += n.Alter
	}
	return acc
}

// Fifths position of each natural letter relative to c.
var letterFifths = map[byte]int{
	'f': -1, 'c': 0, 'g': 1, 'd': 2, 'a': 3, 'e': 4, 'b': 5,
}

// Mode is major or minor.
type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

// Key is a tonic with a mode.
type Key struct {
	Tonic Note
	Mode  Mode
}

// CMajor is the key used when no key is given.
var CMajor = Key{Tonic: Note{Letter: 'c'}}

// ParseKey parses a key name: a note token, optionally followed by "m"
// for minor, e.g. "d", "fis", "cm", "c,m", "desm".
func ParseKey(name string) (Key, error) {
	var k Key
	token := name
	if t, ok := strings.CutSuffix(token, "m"); ok {
		token = t
		k.Mode = Minor
	}
	tonic, err := ParseNote(token)
	if err != nil {
		return Key{}, &Error{Kind: ErrInvalidKey, Input: name, Offset: -1, Err: err}
	}
	k.Tonic = tonic
	return k, nil
}

// String returns the key name, e.g. "cism".
func (k Key) String() string {
	if k.Mode == Minor {
		return k.Tonic.String() + "m"
	}
	return k.Tonic.String()
}

// Signature returns the key signature. Keys that would need more than
// seven accidentals use the enharmonic signature, so desm gets the four
// sharps of cism.
func (k Key) Signature() Signature {
	fifths := letterFifths[k.Tonic.Letter] + 7*k.Tonic.Alter
	if k.Mode == Minor {
		fifths -= 3
	}
	for fifths > 7 {
		fifths -= 12
	}
	for fifths < -7 {
		fifths += 12
	}
	return Signature(fifths)
}

// Dual returns the relative key: the minor key a minor third below a major
// tonic, or the major key a minor third above a minor tonic. The tonic
// keeps its octave and is spelled with k's signature.
func (k Key) Dual() Key {
	value := k.Tonic.Semitones()
	octave := floorDiv(value, 12)

	dual := Key{Mode: Minor}
	class := mod(value-3, 12)
	if k.Mode == Minor {
		dual.Mode = Major
		class = mod(value+3, 12)
	}
	dual.Tonic = Spell(12*octave+class, k.Signature())
	return dual
}

// Same reports whether k and other have the same tonic pitch and mode,
// ignoring spelling.
func (k Key) Same(other Key) bool {
	return k.Mode == other.Mode && k.Tonic.Semitones() == other.Tonic.Semitones()
}

// Accidentals returns the accidentals of the named key.
func Accidentals(key string) ([]string, error) {
	k, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	return k.Signature().Accidentals(), nil
}

// DualKey returns the name of the relative major or minor key.
func DualKey(key string) (string, error) {
	k, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	return k.Dual().String(), nil
}
