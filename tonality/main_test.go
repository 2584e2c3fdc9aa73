package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egonelbre/tonality/pitch"
)

// run executes the root command with args, using an isolated config path.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if !strings.Contains(strings.Join(args, " "), "--config") {
		t.Setenv(configEnv, filepath.Join(t.TempDir(), "config.yaml"))
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"render in c", []string{"render", "c d e f g a b"}, "c d e f g a b\n"},
		{"render in d", []string{"render", "--key", "d", "d e fis g a b cis'"}, "d e fis g a b cis'\n"},
		{"render split args", []string{"render", "-k", "d", "d", "e", "fis"}, "d e fis\n"},
		{"render values", []string{"render", "--values", "[14, -9, 5, 31, 8]"}, "d' dis, f g'' gis\n"},
		{"render values flats", []string{"render", "-k", "bes", "--values", "[14, -9, 5, 31, 8]"}, "d' es, f g'' as\n"},
		{"render transpose", []string{"render", "-k", "bes", "--values", "[0, 2, 4, 5, 7, 9, 11]", "--transpose=-2"}, "bes, c d es f g a\n"},
		{"render reverse", []string{"render", "-k", "d", "--transpose=2", "--reverse", "c e g"}, "a fis d\n"},
		{"render empty", []string{"render"}, "\n"},
		{"interval", []string{"interval", "m3", "P5", "-P4", "TT", "m16"}, "3\n7\n-5\n6\n25\n"},
		{"interval negative tritone", []string{"interval", "-TT"}, "-6\n"},
		{"interval negative diminished", []string{"interval", "-d14"}, "-21\n"},
		{"interval negative bare", []string{"interval", "-m7", "-5"}, "-10\n-7\n"},
		{"interval after dashes", []string{"interval", "--", "-P4", "-M2"}, "-5\n-2\n"},
		{"interval with flags", []string{"interval", "-k", "d", "-P4", "--format", "text", "-v", "M3"}, "-5\n4\n"},
		{"semitones", []string{"semitones", "fis", "c"}, "-6\n"},
		{"semitones octave", []string{"semitones", "c", "c''"}, "24\n"},
		{"accidentals", []string{"accidentals", "d"}, "f# c#\n"},
		{"accidentals flats", []string{"accidentals", "es"}, "bb eb ab\n"},
		{"accidentals none", []string{"accidentals", "am"}, "\n"},
		{"dual", []string{"dual", "e"}, "cism\n"},
		{"dual minor", []string{"dual", "dm"}, "f\n"},
		{"scale", []string{"scale", "d,"}, "d, e, fis, g, a, b, cis\n"},
		{"scale minor shifted", []string{"scale", "c,m", "--shift", "1"}, "d, es, f, g, as, bes, c\n"},
		{"scale flats", []string{"scale", "es"}, "es f g as bes c' d'\n"},
		{"scale respelled", []string{"scale", "c,m", "-s", "1", "--key", "d"}, "d, dis, f, g, gis, ais, c\n"},
		{"chord", []string{"chord", "a,"}, "a, cis e\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, _, err := run(t, test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind error
	}{
		{"bad note", []string{"render", "c x"}, pitch.ErrInvalidNote},
		{"mixed accidentals", []string{"render", "fises"}, pitch.ErrInvalidNote},
		{"bad spelling key", []string{"render", "--key", "q", "c"}, pitch.ErrInvalidKey},
		{"bad value", []string{"render", "--values", "[1, 2.5]"}, pitch.ErrInvalidPitch},
		{"bad interval", []string{"interval", "P5", "X3"}, pitch.ErrInvalidInterval},
		{"bad negative interval", []string{"interval", "-X3"}, pitch.ErrInvalidInterval},
		{"bad configured key", []string{"config", "set", "key", "cisx"}, pitch.ErrInvalidKey},
		{"bad distance", []string{"semitones", "c", "z"}, pitch.ErrInvalidNote},
		{"bad key", []string{"accidentals", "cmm"}, pitch.ErrInvalidKey},
		{"bad dual", []string{"dual", "m"}, pitch.ErrInvalidKey},
		{"bad scale", []string{"scale", "w"}, pitch.ErrInvalidKey},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := run(t, test.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, test.kind)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"interval"},
		{"semitones", "c"},
		{"dual"},
		{"keys", "c"},
		{"render", "--values", "[1]", "c"},
		{"render", "--format", "xml", "c"},
		{"interval", "-o", "json"},
		{"interval", "--bogus", "P5"},
		{"keys", "--mode", "mjaor"},
		{"config", "set", "format", "csv"},
		{"config", "set", "mode", "minor"},
		{"config", "get", "mode"},
	} {
		_, _, err := run(t, args...)
		assert.Error(t, err, "args %q", args)
	}
}

func TestKeysCommand(t *testing.T) {
	out, _, err := run(t, "keys")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(standardKeys))
	assert.Equal(t, "ces\tmajor\tbb eb ab db gb cb fb\tas,m", lines[0])

	out, _, err = run(t, "keys", "--mode", "minor")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 15)
	assert.Equal(t, "asm\tminor\tbb eb ab db gb cb fb\tces'", lines[0])
	assert.Equal(t, "am\tminor\t\tc", lines[7])
	assert.Equal(t, "aism\tminor\tf# c# g# d# a# e# b#\tcis", lines[14])

	out, _, err = run(t, "keys", "--mode", "major", "-o", "json")
	require.NoError(t, err)
	var result keysResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Keys, 15)
	for i := 1; i < len(result.Keys); i++ {
		assert.LessOrEqual(t, result.Keys[i-1].Signature, result.Keys[i].Signature)
	}
	assert.Equal(t, "c", result.Keys[7].Key)
	assert.Equal(t, 0, result.Keys[7].Signature)
	assert.Empty(t, result.Keys[7].Accidentals)
}

func TestFormats(t *testing.T) {
	out, _, err := run(t, "render", "-k", "d", "-o", "json", "d e fis")
	require.NoError(t, err)
	var notes notesResult
	require.NoError(t, json.Unmarshal([]byte(out), &notes))
	assert.Equal(t, notesResult{Key: "d", Notes: "d e fis", Values: []int{2, 4, 6}}, notes)

	out, _, err = run(t, "accidentals", "bes", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "key: bes")
	assert.Contains(t, out, "mode: major")
	assert.Contains(t, out, "signature: -2")
	assert.Contains(t, out, "dual: gm")

	out, _, err = run(t, "interval", "-o", "table", "m3", "TT")
	require.NoError(t, err)
	assert.Contains(t, out, "INTERVAL")
	assert.Contains(t, out, "m3")
	assert.Contains(t, out, "TT")
	assert.Contains(t, out, "6")
}

func TestConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tonality", "config.yaml")
	require.NoError(t, Config{Key: "bes", Format: "yaml"}.Save(path))

	t.Setenv(configEnv, path)
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "--values", "[10, 3]"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "notes: bes es")

	// flags override the file
	text, _, err := run(t, "--config", path, "render", "-k", "d", "-o", "text", "--values", "[10, 3]")
	require.NoError(t, err)
	assert.Equal(t, "ais dis\n", text)
}

func TestInvalidConfigKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Config{Key: "nope"}.Save(path))

	// only commands spelling in the configured key fail
	_, _, err := run(t, "--config", path, "interval", "P5")
	require.NoError(t, err)
	_, _, err = run(t, "--config", path, "render", "c")
	assert.ErrorIs(t, err, pitch.ErrInvalidKey)
}

func TestIntervalFormats(t *testing.T) {
	out, _, err := run(t, "interval", "-o", "json", "-P4", "TT")
	require.NoError(t, err)
	var result intervalsResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []intervalResult{{"-P4", -5}, {"TT", 6}}, result.Intervals)

	out, _, err = run(t, "interval", "-ojson", "-d5")
	require.NoError(t, err)
	assert.Contains(t, out, `"semitones": -6`)

	out, _, err = run(t, "interval", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "tonality interval")
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, _, err := run(t, "--config", path, "config", "set", "key", "bes")
	require.NoError(t, err)
	assert.Equal(t, "key set to bes\n", out)

	out, _, err = run(t, "--config", path, "config", "set", "format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "format set to yaml\n", out)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Key: "bes", Format: "yaml"}, cfg)

	out, _, err = run(t, "--config", path, "config", "get", "key")
	require.NoError(t, err)
	assert.Equal(t, "bes\n", out)

	out, _, err = run(t, "--config", path, "-o", "text", "config", "get")
	require.NoError(t, err)
	assert.Equal(t, "path: "+path+"\nkey: bes\nformat: yaml\n", out)

	// later commands pick up the stored defaults
	out, _, err = run(t, "--config", path, "render", "--values", "[10, 3]")
	require.NoError(t, err)
	assert.Contains(t, out, "notes: bes es")
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "-v", "scale", "d")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "shift=0")

	_, stderr, err = run(t, "scale", "d")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = run(t, "interval", "-v", "P5")
	require.NoError(t, err)
	assert.Contains(t, stderr, "config loaded")
}
