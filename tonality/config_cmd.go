package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/egonelbre/tonality/pitch"
)

type configResult struct {
	Path   string `yaml:"path" json:"path"`
	Key    string `yaml:"key" json:"key"`
	Format string `yaml:"format" json:"format"`
}

func (r configResult) Text() string {
	return fmt.Sprintf("path: %s\nkey: %s\nformat: %s", r.Path, r.Key, r.Format)
}

func (r configResult) Table() ([]string, [][]string) {
	return []string{"PATH", "KEY", "FORMAT"}, [][]string{{r.Path, r.Key, r.Format}}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the defaults in the config file",
		Long: `Show or change the defaults stored in the config file.

The file is $TONALITY_CONFIG, --config, or tonality/config.yaml in the
user config directory.

Examples:
  tonality config get
  tonality config set key bes
  tonality config set format table`,
	}
	cmd.AddCommand(a.configGetCmd(), a.configSetCmd())
	return cmd
}

func (a *app) configGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key|format]",
		Short: "Print the stored defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(a.configFile)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return a.output(cmd.OutOrStdout(), configResult{Path: a.configFile, Key: cfg.Key, Format: cfg.Format})
			}
			switch args[0] {
			case "key":
				fmt.Fprintln(cmd.OutOrStdout(), cfg.Key)
			case "format":
				fmt.Fprintln(cmd.OutOrStdout(), cfg.Format)
			default:
				return fmt.Errorf("unknown config field %q, want key or format", args[0])
			}
			return nil
		},
	}
}

func (a *app) configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key|format> <value>",
		Short: "Store a default in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, value := args[0], args[1]
			cfg, err := LoadConfig(a.configFile)
			if err != nil {
				return err
			}

			switch field {
			case "key":
				if _, err := pitch.ParseKey(value); err != nil {
					return err
				}
				cfg.Key = value
			case "format":
				if !slices.Contains(formats, Format(value)) {
					return fmt.Errorf("unsupported output format: %s", value)
				}
				cfg.Format = value
			default:
				return fmt.Errorf("unknown config field %q, want key or format", field)
			}

			if err := cfg.Save(a.configFile); err != nil {
				return err
			}
			a.log.Debug("config saved", "path", a.configFile, field, value)
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", field, value)
			return nil
		},
	}
}
