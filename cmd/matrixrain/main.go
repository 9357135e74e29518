package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/matrixrain/internal/config"
	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/sim"
	"github.com/san-kum/matrixrain/internal/term"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const bannerDelay = 1500 * time.Millisecond

var (
	title = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

type options struct {
	speed, density, spawns, length int
	color                          palette.Scheme
	backend                        string
	configFile                     string
	preset                         string
	logFile                        string
	saveConfig                     string
	seed                           int64
	banner                         bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "matrixrain: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newOptions().command()
}

func newOptions() *options {
	return &options{color: palette.Green}
}

func (o *options) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "matrixrain",
		Short:         "digital rain in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}
	o.bindEffectFlags(rootCmd.Flags())
	f := rootCmd.Flags()
	f.StringVar(&o.backend, "backend", term.BackendTea, "terminal backend (tea, tcell)")
	f.StringVar(&o.configFile, "config", "", "config file path (yaml)")
	f.StringVar(&o.logFile, "log", "", "write debug log to file")
	f.StringVar(&o.saveConfig, "save-config", "", "write the merged settings to a yaml file")
	f.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "random seed")
	f.BoolVar(&o.banner, "banner", true, "show the controls banner before starting")

	rootCmd.AddCommand(newPresetsCmd(), newKeysCmd(), newBenchCmd())
	return rootCmd
}

func (o *options) bindEffectFlags(f *pflag.FlagSet) {
	f.IntVarP(&o.speed, "speed", "s", config.DefaultConfig().Speed, "frame delay in ms (lower is faster)")
	f.IntVarP(&o.density, "density", "d", config.DefaultConfig().Density, "spawn density percentage (0-100)")
	f.IntVarP(&o.spawns, "spawns", "n", config.DefaultConfig().Spawns, "max new streams per frame")
	f.IntVarP(&o.length, "length", "l", config.DefaultConfig().Length, "max drop length")
	f.VarP(&o.color, "color", "c", "color scheme (green, blue, red, purple, cyan, rainbow)")
	f.StringVar(&o.preset, "preset", "", "start from a preset (see 'matrixrain presets')")
}

// resolve merges settings: defaults, environment, preset, config file,
// then flags set on the command line.
func (o *options) resolve(f *pflag.FlagSet, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if o.preset != "" {
		if err := cfg.ApplyPreset(o.preset); err != nil {
			return nil, err
		}
	}
	if o.configFile != "" {
		if err := config.LoadInto(o.configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if f.Changed("speed") {
		cfg.Speed = o.speed
	}
	if f.Changed("density") {
		cfg.Density = o.density
	}
	if f.Changed("spawns") {
		cfg.Spawns = o.spawns
	}
	if f.Changed("length") {
		cfg.Length = o.length
	}
	if f.Changed("color") {
		cfg.Color = o.color.String()
	}
	if f.Changed("backend") {
		cfg.Backend = o.backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *options) run(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := o.resolve(cmd.Flags(), os.LookupEnv)
	if err != nil {
		return err
	}
	if o.saveConfig != "" {
		if err := config.Save(o.saveConfig, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved config to %s\n", o.saveConfig)
	}
	st, err := cfg.ControlState()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(o.logFile, cfg.Backend)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Printf("start: %s seed=%d", cfg, o.seed)

	ctx := cmd.Context()
	if o.banner {
		showBanner(ctx, cmd.OutOrStdout(), cfg)
	}
	err = term.Run(ctx, cfg.Backend, term.Options{State: st, Source: sim.NewSource(o.seed)})
	if err != nil {
		log.Printf("stop: %v", err)
		return err
	}
	log.Printf("stop: clean exit")
	return nil
}

// setupLogging points the standard logger at path, or discards it so
// nothing is written over the rain.
func setupLogging(path, backend string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if backend == term.BackendTea {
		f, err := tea.LogToFile(path, "matrixrain")
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		return func() { f.Close() }, nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix("matrixrain ")
	return func() { f.Close() }, nil
}

func showBanner(ctx context.Context, w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, title.Render("Matrix Rain")+" "+dim.Render("press q/Esc/Enter/Space/Ctrl+C to exit"))
	fmt.Fprintln(w, dim.Render("controls: ↑↓ speed | ←→ density | +/- length | [/] spawns | 1-6 colors"))
	fmt.Fprintln(w, cyan.Render(cfg.String()))
	select {
	case <-time.After(bannerDelay):
	case <-ctx.Done():
	}
}
