package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/san-kum/matrixrain/internal/bench"
	"github.com/san-kum/matrixrain/internal/config"
	"github.com/san-kum/matrixrain/internal/control"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSPEED\tDENSITY\tSPAWNS\tLENGTH\tCOLOR\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
					name, p.Speed, p.Density, p.Spawns, p.Length, p.Color, config.PresetInfo[name])
			}
			return w.Flush()
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "show runtime controls",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, title.Render("runtime controls"))
			for _, b := range control.Bindings() {
				fmt.Fprintf(out, "  %s %s\n", cyan.Width(26).Render(b.Keys), dim.Render(b.Action))
			}
		},
	}
}

func newBenchCmd() *cobra.Command {
	opts := bench.DefaultOptions()
	var preset, jsonPath string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "run the rain off-screen and report per-tick counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if preset != "" {
				cfg := config.DefaultConfig()
				if err := cfg.ApplyPreset(preset); err != nil {
					return err
				}
				st, err := cfg.ControlState()
				if err != nil {
					return err
				}
				opts.State = st
			}
			res, err := bench.Run(opts)
			if err != nil {
				return err
			}
			switch jsonPath {
			case "":
				return bench.Report(cmd.OutOrStdout(), res)
			case "-":
				return bench.WriteJSON(cmd.OutOrStdout(), res)
			}
			if err := bench.ExportJSON(jsonPath, res); err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", jsonPath)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.Rows, "rows", bench.DefaultRows, "grid rows")
	f.IntVar(&opts.Cols, "cols", bench.DefaultCols, "grid columns")
	f.IntVar(&opts.Ticks, "ticks", bench.DefaultTicks, "ticks to simulate")
	f.Int64Var(&opts.Seed, "seed", 1, "random seed")
	f.StringVar(&preset, "preset", "", "effect preset to benchmark")
	f.StringVar(&jsonPath, "json", "", "write per-tick series as JSON to a file (- for stdout)")
	return cmd
}
