package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/egonelbre/tonality/pitch"
)

type notesResult struct {
	Key    string `yaml:"key" json:"key"`
	Shift  int    `yaml:"shift,omitempty" json:"shift,omitempty"`
	Notes  string `yaml:"notes" json:"notes"`
	Values []int  `yaml:"values" json:"values"`
}

func newNotesResult(set pitch.Set, k pitch.Key, shift int) notesResult {
	return notesResult{
		Key:    k.String(),
		Shift:  shift,
		Notes:  set.RenderKey(k),
		Values: set.Values(),
	}
}

func (r notesResult) Text() string { return r.Notes }

func (r notesResult) Table() ([]string, [][]string) {
	tokens := strings.Fields(r.Notes)
	rows := make([][]string, len(tokens))
	for i, token := range tokens {
		rows[i] = []string{token, strconv.Itoa(r.Values[i])}
	}
	return []string{"NOTE", "SEMITONES"}, rows
}

func (a *app) renderCmd() *cobra.Command {
	var (
		values    string
		transpose int
		reverse   bool
	)
	cmd := &cobra.Command{
		Use:   "render [notes...]",
		Short: "Spell notes or pitch numbers in a key",
		Long: `Parse notes (or --values, a yaml/json list of semitone numbers),
optionally transpose and reverse them, and spell them in --key.`,
		Example: `  tonality render --key d "d e fis g a b cis'"
  tonality render --values "[0, 2, 4, 5, 7, 9, 11]" --transpose -2 --key bes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input any = strings.Join(args, " ")
			if values != "" {
				if len(args) > 0 {
					return fmt.Errorf("cannot use notes together with --values")
				}
				var list []any
				if err := yaml.Unmarshal([]byte(values), &list); err != nil {
					return fmt.Errorf("failed to parse --values: %w", err)
				}
				input = list
			}
			set, err := pitch.Make(input)
			if err != nil {
				return err
			}
			set = set.Transpose(transpose)
			if reverse {
				set = set.Reverse()
			}

			k, err := a.spellingKey()
			if err != nil {
				return err
			}
			a.log.Debug("render", "pitches", set.Len(), "transpose", transpose, "reverse", reverse)
			return a.output(cmd.OutOrStdout(), newNotesResult(set, k, 0))
		},
	}
	cmd.Flags().StringVar(&values, "values", "", `semitone list, e.g. "[14, -9, 5]"`)
	cmd.Flags().IntVarP(&transpose, "transpose", "t", 0, "transpose by semitones")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "reverse the order")
	return cmd
}

type intervalResult struct {
	Interval  string `yaml:"interval" json:"interval"`
	Semitones int    `yaml:"semitones" json:"semitones"`
}

type intervalsResult struct {
	Intervals []intervalResult `yaml:"intervals" json:"intervals"`
}

func (r intervalsResult) Text() string {
	lines := make([]string, len(r.Intervals))
	for i, iv := range r.Intervals {
		lines[i] = strconv.Itoa(iv.Semitones)
	}
	return strings.Join(lines, "\n")
}

func (r intervalsResult) Table() ([]string, [][]string) {
	rows := make([][]string, len(r.Intervals))
	for i, iv := range r.Intervals {
		rows[i] = []string{iv.Interval, strconv.Itoa(iv.Semitones)}
	}
	return []string{"INTERVAL", "SEMITONES"}, rows
}

func (a *app) intervalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interval <interval>...",
		Short: "Semitone size of named intervals",
		Long: `Print the semitone size of each interval: a quality (P, M, m, A, d)
followed by a diatonic number, a bare number, or TT. A leading - negates.`,
		Example: `  tonality interval m3 P5 -P4 TT m16`,
		// -P4 and -TT would be read as shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals, flags := splitIntervalArgs(cmd, args)
			if err := cmd.Flags().Parse(flags); err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if err := a.init(cmd); err != nil {
				return err
			}
			if len(intervals) == 0 {
				return fmt.Errorf("requires at least 1 interval")
			}

			var result intervalsResult
			for _, arg := range intervals {
				iv, err := pitch.ParseInterval(arg)
				if err != nil {
					return err
				}
				result.Intervals = append(result.Intervals, intervalResult{
					Interval:  iv.String(),
					Semitones: iv.Semitones(),
				})
			}
			return a.output(cmd.OutOrStdout(), result)
		},
	}
}

// splitIntervalArgs separates intervals from flags. Arguments starting
// with "-" are intervals unless they name a known flag, everything after
// "--" is an interval.
func splitIntervalArgs(cmd *cobra.Command, args []string) (intervals, flags []string) {
	fs := cmd.Flags()
	cmd.InheritedFlags() // merges the persistent flags into fs
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(intervals, args[i+1:]...), flags
		}
		if len(arg) < 2 || arg[0] != '-' {
			intervals = append(intervals, arg)
			continue
		}

		name, long := arg[1:], false
		if strings.HasPrefix(arg, "--") {
			name, long = arg[2:], true
		}
		name, _, hasValue := strings.Cut(name, "=")
		if name == "" {
			intervals = append(intervals, arg)
			continue
		}
		f := fs.Lookup(name)
		if !long {
			f = fs.ShorthandLookup(name[:1])
			hasValue = hasValue || len(name) > 1
		}
		if f == nil && !long {
			intervals = append(intervals, arg)
			continue
		}

		flags = append(flags, arg)
		if f != nil && f.NoOptDefVal == "" && !hasValue && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return intervals, flags
}

type semitonesResult struct {
	From      string `yaml:"from" json:"from"`
	To        string `yaml:"to" json:"to"`
	Semitones int    `yaml:"semitones" json:"semitones"`
}

func (r semitonesResult) Text() string { return strconv.Itoa(r.Semitones) }

func (r semitonesResult) Table() ([]string, [][]string) {
	return []string{"FROM", "TO", "SEMITONES"}, [][]string{{r.From, r.To, strconv.Itoa(r.Semitones)}}
}

func (a *app) semitonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "semitones <from> <to>",
		Short:   "Signed distance in semitones between two notes",
		Example: `  tonality semitones fis c`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := pitch.Distance(args[0], args[1])
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), semitonesResult{From: args[0], To: args[1], Semitones: n})
		},
	}
}

type keyResult struct {
	Key         string   `yaml:"key" json:"key"`
	Mode        string   `yaml:"mode" json:"mode"`
	Signature   int      `yaml:"signature" json:"signature"`
	Accidentals []string `yaml:"accidentals" json:"accidentals"`
	Dual        string   `yaml:"dual" json:"dual"`
}

func newKeyResult(k pitch.Key) keyResult {
	sig := k.Signature()
	return keyResult{
		Key:         k.String(),
		Mode:        k.Mode.String(),
		Signature:   int(sig),
		Accidentals: sig.Accidentals(),
		Dual:        k.Dual().String(),
	}
}

func (r keyResult) row() []string {
	return []string{r.Key, r.Mode, strings.Join(r.Accidentals, " "), r.Dual}
}

var keyHeaders = []string{"KEY", "MODE", "ACCIDENTALS", "DUAL"}

type accidentalsResult keyResult

func (r accidentalsResult) Text() string { return strings.Join(r.Accidentals, " ") }

func (r accidentalsResult) Table() ([]string, [][]string) {
	return keyHeaders, [][]string{keyResult(r).row()}
}

func (a *app) accidentalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "accidentals <key>",
		Short:   "Key signature of a key",
		Example: `  tonality accidentals d`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := pitch.ParseKey(args[0])
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), accidentalsResult(newKeyResult(k)))
		},
	}
}

type dualResult keyResult

func (r dualResult) Text() string { return r.Dual }

func (r dualResult) Table() ([]string, [][]string) {
	return keyHeaders, [][]string{keyResult(r).row()}
}

func (a *app) dualCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dual <key>",
		Short:   "Relative major or minor key",
		Example: `  tonality dual e`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := pitch.ParseKey(args[0])
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), dualResult(newKeyResult(k)))
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return a.derivedCmd("scale", "Major or natural minor scale of a key", pitch.Key.Scale)
}

func (a *app) chordCmd() *cobra.Command {
	return a.derivedCmd("chord", "Tonic triad of a key", pitch.Key.Chord)
}

// derivedCmd creates a command printing a set derived from a key. The
// set is spelled in the same key unless --key is given.
func (a *app) derivedCmd(name, short string, derive func(pitch.Key, int) pitch.Set) *cobra.Command {
	var shift int
	cmd := &cobra.Command{
		Use:     name + " <key>",
		Short:   short,
		Example: fmt.Sprintf("  tonality %s c,m --shift 1", name),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := pitch.ParseKey(args[0])
			if err != nil {
				return err
			}
			spelling := k
			if cmd.Flags().Changed("key") {
				if spelling, err = a.spellingKey(); err != nil {
					return err
				}
			}
			a.log.Debug(name, "key", k, "shift", shift, "spelling", spelling)

			result := newNotesResult(derive(k, shift), spelling, shift)
			result.Key = k.String()
			return a.output(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().IntVarP(&shift, "shift", "s", 0, "rotate by degrees")
	return cmd
}

// standardKeys lists the keys with at most seven accidentals, by
// signature.
var standardKeys = []string{
	"ces", "ges", "des", "as", "es", "bes", "f", "c", "g", "d", "a", "e", "b", "fis", "cis",
	"asm", "esm", "besm", "fm", "cm", "gm", "dm", "am", "em", "bm", "fism", "cism", "gism", "dism", "aism",
}

type keysResult struct {
	Keys []keyResult `yaml:"keys" json:"keys"`
}

func (r keysResult) Text() string {
	lines := make([]string, len(r.Keys))
	for i, k := range r.Keys {
		lines[i] = strings.Join(k.row(), "\t")
	}
	return strings.Join(lines, "\n")
}

func (r keysResult) Table() ([]string, [][]string) {
	rows := make([][]string, len(r.Keys))
	for i, k := range r.Keys {
		rows[i] = k.row()
	}
	return keyHeaders, rows
}

func (a *app) keysCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Every standard key with its signature and relative key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch mode {
			case "", pitch.Major.String(), pitch.Minor.String():
			default:
				return fmt.Errorf("unknown mode %q, want major or minor", mode)
			}

			var result keysResult
			for _, name := range standardKeys {
				k, err := pitch.ParseKey(name)
				if err != nil {
					return err
				}
				if mode != "" && k.Mode.String() != mode {
					continue
				}
				result.Keys = append(result.Keys, newKeyResult(k))
			}
			slices.SortStableFunc(result.Keys, func(x, y keyResult) int {
				return x.Signature - y.Signature
			})
			return a.output(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "only major or minor keys")
	return cmd
}
