// SPDX-License-Identifier: MIT

// Package metrics exports Prometheus counters for puzzle generation and game
// sessions. A Collector is wired in through the hook options of the game and
// puzzle packages, so neither package imports Prometheus itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/borderpath/game"
	"github.com/katalvlaran/borderpath/puzzle"
)

const namespace = "borderpath"

// Collector holds the registered metric vectors.
type Collector struct {
	guesses     *prometheus.CounterVec
	transitions *prometheus.CounterVec
	attempts    *prometheus.CounterVec
	pathCount   prometheus.Histogram
	pathLength  prometheus.Histogram
}

// New registers the collector's metrics with reg. A nil reg selects
// prometheus.DefaultRegisterer. Registering twice on one registry panics.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		// Labels: outcome (correct, wrong, already_guessed, invalid)
		guesses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "guesses_total",
			Help:      "Guesses evaluated, by outcome",
		}, []string{"outcome"}),

		// Labels: from, to (inactive, active, won, ended)
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "phase_transitions_total",
			Help:      "Session phase changes",
		}, []string{"from", "to"}),

		// Labels: result (accepted, same_node, neighbors, disconnected, truncated, out_of_band)
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "puzzle",
			Name:      "attempts_total",
			Help:      "Endpoint pairs sampled by the generator, by result",
		}, []string{"result"}),

		pathCount: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "puzzle",
			Name:      "shortest_paths",
			Help:      "Number of shortest paths in accepted puzzles",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),

		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "puzzle",
			Name:      "path_nodes",
			Help:      "Node count of accepted puzzle paths",
			Buckets:   prometheus.LinearBuckets(3, 1, 8),
		}),
	}
}

// RecordGuess counts one evaluated guess.
func (c *Collector) RecordGuess(e game.GuessEvent) {
	c.guesses.WithLabelValues(e.Outcome.String()).Inc()
}

// RecordPhaseChange counts one phase transition.
func (c *Collector) RecordPhaseChange(from, to game.Phase) {
	c.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// RecordAttempt counts one generator attempt; accepted attempts also feed
// the path histograms.
func (c *Collector) RecordAttempt(a puzzle.Attempt) {
	c.attempts.WithLabelValues(a.Result.String()).Inc()
	if a.Result == puzzle.Accepted {
		c.pathCount.Observe(float64(a.Paths))
		c.pathLength.Observe(float64(a.Length))
	}
}

// GameOptions returns session options that feed c.
func (c *Collector) GameOptions() []game.Option {
	return []game.Option{
		game.WithOnGuess(c.RecordGuess),
		game.WithOnPhaseChange(c.RecordPhaseChange),
	}
}

// PuzzleOptions returns generator options that feed c.
func (c *Collector) PuzzleOptions() []puzzle.Option {
	return []puzzle.Option{puzzle.WithOnAttempt(c.RecordAttempt)}
}
