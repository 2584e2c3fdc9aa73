// Command tonality parses, spells and derives Lilypond style pitches.
//
// Usage:
//
//	tonality [flags] <command> [args]
//
// Commands:
//
//	render       - spell notes or pitch numbers in a key
//	interval     - semitone size of named intervals (m3, -P4, TT)
//	semitones    - distance between two notes
//	accidentals  - key signature of a key
//	dual         - relative major or minor key
//	scale        - major or natural minor scale of a key
//	chord        - tonic triad of a key
//	keys         - every standard key with signature and relative key
//	config       - show or change the defaults in the config file
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/egonelbre/tonality/pitch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	configFile string // resolved from --config or ConfigPath
	key        string
	format     string
	verbose    bool

	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tonality",
		Short: "Lilypond style pitch names, keys, scales and intervals",
		Long: `tonality - parse, spell and derive Lilypond style pitches.

Notes are written as a letter, accidentals and octave marks:
  c d e f g a b      naturals, h is an alias of b
  fis cisis          sharps
  bes es as eses     flats
  c' c,, f,'         octave marks, summed

Keys are note names with an optional m for minor: d, bes, cism, c,m.

Defaults for --key and --format are read from $TONALITY_CONFIG or
the tonality/config.yaml file in the user config directory.

Examples:
  tonality render --key d "d e fis g a b cis'"
  tonality render --values "[14, -9, 5, 31, 8]"
  tonality scale c,m --shift 1
  tonality interval m16 -P4 TT
  tonality keys --format table`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.DisableFlagParsing {
				// flags are parsed by the command itself
				return nil
			}
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $TONALITY_CONFIG or user config dir)")
	flags.StringVarP(&a.key, "key", "k", "", "key used for spelling, e.g. d, bes, cism")
	flags.StringVarP(&a.format, "format", "o", "", "output format: text, yaml, json, table")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		a.renderCmd(),
		a.intervalCmd(),
		a.semitonesCmd(),
		a.accidentalsCmd(),
		a.dualCmd(),
		a.scaleCmd(),
		a.chordCmd(),
		a.keysCmd(),
		a.configCmd(),
	)
	return root
}

// init loads the config file and sets up logging. Flags override the
// config file.
func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := a.configPath
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return err
		}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	a.configFile = path
	a.log.Debug("config loaded", "path", path, "key", cfg.Key, "format", cfg.Format)

	if !cmd.Flags().Changed("key") {
		a.key = cfg.Key
	}
	if !cmd.Flags().Changed("format") {
		a.format = cfg.Format
	}
	return nil
}

// spellingKey returns the key given with --key or in the config file.
func (a *app) spellingKey() (pitch.Key, error) {
	if a.key == "" {
		return pitch.CMajor, nil
	}
	k, err := pitch.ParseKey(a.key)
	if err != nil {
		return pitch.Key{}, err
	}
	a.log.Debug("spelling key", "key", k, "signature", int(k.Signature()))
	return k, nil
}

func (a *app) output(w io.Writer, result Result) error {
	return Output(w, Format(a.format), result)
}
