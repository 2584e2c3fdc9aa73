package pitch

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var update = flag.Bool("update", false, "update expected output")

//go:embed testdata/keys.golden
var keysGolden string

func TestScale(t *testing.T) {
	tests := []struct {
		key    string
		shift  int
		render string
		want   string
	}{
		{"c,", 0, "c,", "c, d, e, f, g, a, b,"},
		{"d,", 0, "d,", "d, e, fis, g, a, b, cis"},
		{"c,m", 0, "c,m", "c, d, es, f, g, as, bes,"},
		{"d,m", 0, "d,m", "d, e, f, g, a, bes, c"},
		{"c,m", 1, "c,m", "d, es, f, g, as, bes, c"},
		{"d'm", -2, "d,m", "bes c' d' e' f' g' a'"},
		{"c", 7, "c", "c' d' e' f' g' a' b'"},
		{"c", -7, "c", "c, d, e, f, g, a, b,"},
		{"c", 9, "c", "e' f' g' a' b' c'' d''"},
	}
	for _, test := range tests {
		scale, err := Scale(test.key, test.shift)
		if err != nil {
			t.Fatal(err)
		}
		got, err := scale.Render(test.render)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("Scale(%q, %d) = %q, want %q", test.key, test.shift, got, test.want)
		}
	}
}

func TestChord(t *testing.T) {
	tests := []struct {
		key    string
		shift  int
		render string
		want   string
	}{
		{"c", 0, "c", "c e g"},
		{"a,", 0, "a", "a, cis e"},
		{"cm", 0, "cm", "c es g"},
		{"a,m", 0, "am", "a, c e"},
		{"cm", 1, "cm", "es g c'"},
		{"a,m", -2, "am", "c, e, a,"},
		{"c", 3, "c", "c' e' g'"},
	}
	for _, test := range tests {
		chord, err := Chord(test.key, test.shift)
		if err != nil {
			t.Fatal(err)
		}
		got, err := chord.Render(test.render)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("Chord(%q, %d) = %q, want %q", test.key, test.shift, got, test.want)
		}
	}

	if _, err := Chord("hm,", 0); err == nil {
		t.Error("expected error")
	}
}

func TestScaleAscending(t *testing.T) {
	for _, key := range []string{"c", "fis", "bes,m", "ais'm"} {
		for shift := -10; shift <= 10; shift++ {
			scale, err := Scale(key, shift)
			if err != nil {
				t.Fatal(err)
			}
			values := scale.Values()
			for i := 1; i < len(values); i++ {
				if values[i] <= values[i-1] {
					t.Fatalf("%s shift %d not ascending: %v", key, shift, values)
				}
			}
			if span := values[len(values)-1] - values[0]; span >= 12 {
				t.Fatalf("%s shift %d spans %d semitones", key, shift, span)
			}
		}
	}
}

// TestKeys renders every standard key with its signature, scale, tonic
// triad and relative key.
func TestKeys(t *testing.T) {
	majors := strings.Fields("ces ges des as es bes f c g d a e b fis cis")
	minors := strings.Fields("asm esm besm fm cm gm dm am em bm fism cism gism dism aism")

	var out strings.Builder
	for _, name := range append(majors, minors...) {
		k, err := ParseKey(name)
		if err != nil {
			t.Fatal(err)
		}
		fmt.Fprintf(&out, "%s: [%s] %s | %s | %s\n", name,
			strings.Join(k.Signature().Accidentals(), " "),
			k.Scale(0).RenderKey(k),
			k.Chord(0).RenderKey(k),
			k.Dual())
	}

	if diff := cmp.Diff(keysGolden, out.String()); diff != "" {
		t.Error(diff)
		if *update {
			os.WriteFile("testdata/keys.golden", []byte(out.String()), 0644)
		}
	}
}
