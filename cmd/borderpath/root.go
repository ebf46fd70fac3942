// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/config"
	"github.com/katalvlaran/borderpath/puzzle"
	"github.com/katalvlaran/borderpath/resolve"
)

// app carries flag values and the state built from them before a
// subcommand runs.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	atlasPath  string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "borderpath",
		Short:        "Connect two countries by naming the countries in between",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")
	pf.StringVar(&a.logFormat, "log-format", "", "override log.format (text|json)")
	pf.StringVar(&a.atlasPath, "atlas", "", "atlas file (default: embedded Americas)")

	root.AddCommand(
		newPlayCmd(a),
		newPuzzleCmd(a),
		newPathsCmd(a),
		newValidateCmd(a),
	)

	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.atlasPath != "" {
		cfg.Atlas = a.atlasPath
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(stderr, cfg)

	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) loadAtlas() (*atlas.Atlas, error) {
	if a.cfg.Atlas == "" {
		return atlas.Americas()
	}
	return atlas.LoadFile(a.cfg.Atlas)
}

// resolver builds the name table for at. Name clashes are logged; the first
// mapping of a clashing name stays usable.
func (a *app) resolver(at *atlas.Atlas) resolve.Resolver {
	tbl, err := resolve.FromAtlas(at)
	if err != nil {
		a.log.Warn("ambiguous names in atlas", "atlas", at.Name(), "error", err)
	}
	return tbl
}

// seed picks the flag value, then the config value, then the clock.
func (a *app) seed(flagSeed int64) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case a.cfg.Puzzle.Seed != 0:
		return a.cfg.Puzzle.Seed
	default:
		return time.Now().UnixNano()
	}
}

func (a *app) generator(at *atlas.Atlas, seed int64, extra ...puzzle.Option) (*puzzle.Generator, error) {
	opts := append(a.cfg.PuzzleOptions(),
		puzzle.WithExcluded(at.Excluded()...),
		puzzle.WithSeed(seed),
		puzzle.WithLogger(a.log),
	)
	a.log.Debug("generator", "atlas", at.Name(), "seed", seed)

	return puzzle.NewGenerator(at.Graph(), append(opts, extra...)...)
}
