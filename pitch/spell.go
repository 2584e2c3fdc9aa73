package pitch

import "strings"

// Spell returns the spelling of value under signature sig.
//
// A letter altered by the signature wins when it spells the pitch class
// (ces in G-flat major, eis in F-sharp major). Otherwise a natural letter
// is used, and the remaining pitch classes get a single sharp in sharp
// keys and in C major, a single flat in flat keys.
//
// The octave is taken from the spelled letter, so parsing the result
// always gives value back.
func Spell(value int, sig Signature) Note {
	return spell(value, sig, sig.Alterations())
}

// spell is Spell with the signature's alterations looked up once.
func spell(value int, sig Signature, alter map[byte]int) Note {
	class := mod(value, 12)

	var natural, sharp, flat Note
	var hasNatural bool
	for i := 0; i < len(letters); i++ {
		letter := letters[i]
		switch mod(class-letterClass[letter]+6, 12) - 6 {
		case 0:
			natural, hasNatural = Note{Letter: letter}, true
			if alter[letter] == 0 {
				return withOctave(natural, value)
			}
		case 1:
			sharp = Note{Letter: letter, Alter: 1}
			if alter[letter] == 1 {
				return withOctave(sharp, value)
			}
		case -1:
			flat = Note{Letter: letter, Alter: -1}
			if alter[letter] == -1 {
				return withOctave(flat, value)
			}
		}
	}

	switch {
	case hasNatural:
		return withOctave(natural, value)
	case sig < 0:
		return withOctave(flat, value)
	default:
		return withOctave(sharp, value)
	}
}

func withOctave(n Note, value int) Note {
	n.Octave = 0
	n.Octave = floorDiv(value-n.Semitones(), 12)
	return n
}

// render spells every value in sig and joins them with single spaces.
func render(values []int, sig Signature) string {
	alter := sig.Alterations()
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = spell(v, sig, alter).String()
	}
	return strings.Join(tokens, " ")
}
