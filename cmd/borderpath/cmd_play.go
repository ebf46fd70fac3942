// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/game"
	"github.com/katalvlaran/borderpath/metrics"
	"github.com/katalvlaran/borderpath/puzzle"
)

const playHelp = "Commands: :paths  :reveal  :new  :quit"

func newPlayCmd(a *app) *cobra.Command {
	var (
		seed        int64
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play rounds interactively, one guess per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if metricsAddr == "" {
				metricsAddr = a.cfg.Metrics.Addr
			}
			return a.play(cmd.InOrStdin(), cmd.OutOrStdout(), seed, metricsAddr)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0: config value, then clock)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}

// player is the REPL state of one play invocation.
type player struct {
	out  io.Writer
	at   *atlas.Atlas
	gen  *puzzle.Generator
	sess *game.Session
}

func (a *app) play(in io.Reader, out io.Writer, seed int64, metricsAddr string) error {
	at, err := a.loadAtlas()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	col := metrics.New(reg)
	if metricsAddr != "" {
		stop := a.serveMetrics(metricsAddr, reg)
		defer stop()
	}

	gen, err := a.generator(at, a.seed(seed), col.PuzzleOptions()...)
	if err != nil {
		return err
	}
	p := &player{
		out:  out,
		at:   at,
		gen:  gen,
		sess: game.NewSession(a.resolver(at), append(col.GameOptions(), game.WithLogger(a.log))...),
	}
	if err = p.newRound(); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for p.prompt(); sc.Scan(); p.prompt() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":new":
			if err = p.newRound(); err != nil {
				return err
			}
		case ":reveal":
			p.reveal()
		case ":paths":
			p.hint()
		default:
			p.guess(line)
		}
	}

	return sc.Err()
}

func (p *player) prompt() { fmt.Fprint(p.out, "> ") }

func (p *player) newRound() error {
	pz, err := p.gen.Generate()
	if errors.Is(err, puzzle.ErrAttemptsExhausted) {
		return fmt.Errorf("no puzzle fits the configured band: %w", err)
	}
	if err != nil {
		return err
	}
	if err = p.sess.Start(pz); err != nil {
		return err
	}

	title := fmt.Sprintf("Connect %s to %s", p.at.DisplayName(pz.Start), p.at.DisplayName(pz.End))
	fmt.Fprintln(p.out, titleStyle.Render(title))
	n := p.sess.TotalToFind()
	fmt.Fprintf(p.out, "%d %s to find. %s\n", n, plural(n, "country"), dimStyle.Render(playHelp))

	return nil
}

func (p *player) guess(text string) {
	out, err := p.sess.Guess(text)
	if errors.Is(err, game.ErrNotActive) {
		fmt.Fprintln(p.out, dimStyle.Render("round over: :new for another, :quit to leave"))
		return
	}

	hist := p.sess.History()
	name := p.at.DisplayName(hist[len(hist)-1].Node)
	switch out {
	case game.Correct:
		fmt.Fprintln(p.out, goodStyle.Render(fmt.Sprintf("✓ %s (%d/%d)",
			name, p.sess.FoundCount(), p.sess.TotalToFind())))
	case game.Wrong:
		fmt.Fprintln(p.out, badStyle.Render(fmt.Sprintf("✗ %s is not on a shortest route", name)))
	case game.AlreadyGuessed:
		fmt.Fprintln(p.out, dimStyle.Render(fmt.Sprintf("· %s was already guessed", name)))
	case game.Invalid:
		fmt.Fprintln(p.out, badStyle.Render(fmt.Sprintf("? unknown country %q", text)))
	}

	if p.sess.Phase() == game.Won {
		fmt.Fprintln(p.out, titleStyle.Render("Solved!"))
		p.printRoutes()
	}
}

func (p *player) reveal() {
	if err := p.sess.Reveal(); err != nil {
		fmt.Fprintln(p.out, dimStyle.Render("nothing to reveal: :new for another round"))
		return
	}
	fmt.Fprintln(p.out, titleStyle.Render("Answer"))
	p.printRoutes()
}

func (p *player) hint() {
	ps := p.sess.PossiblePaths()
	if ps == nil {
		return
	}
	n := ps.Len()
	fmt.Fprintf(p.out, "%d possible %s remain\n", n, plural(n, "route"))
}

// printRoutes lists every shortest route, the winning one first.
func (p *player) printRoutes() {
	for i, route := range p.sess.DisplayOrder() {
		line := pathStyle.Render(namedPath(p.at, route))
		if i > 0 {
			line = dimStyle.Render(line)
		}
		fmt.Fprintln(p.out, line)
	}
}

// serveMetrics starts the metrics endpoint in the background and returns a
// function that shuts it down.
func (a *app) serveMetrics(addr string, g prometheus.Gatherer) func() {
	srv := &http.Server{
		Addr:              addr,
		Handler:           metrics.Router(g),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	a.log.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			a.log.Warn("metrics shutdown", "error", err)
		}
	}
}
