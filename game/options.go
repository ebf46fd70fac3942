// SPDX-License-Identifier: MIT

package game

import "log/slog"

// Option configures a Session.
type Option func(*Options)

// Options holds session identity, logging and hooks.
type Options struct {
	// ID overrides the generated session id.
	ID     string
	Logger *slog.Logger
	// OnGuess is called after every evaluated guess.
	OnGuess func(GuessEvent)
	// OnPhaseChange is called after every phase assignment by Start, a
	// winning Guess, Reveal, or an End that left a non-Inactive phase.
	OnPhaseChange func(from, to Phase)
}

// DefaultOptions returns no-op hooks and a discard logger.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.DiscardHandler),
		OnGuess:       func(GuessEvent) {},
		OnPhaseChange: func(Phase, Phase) {},
	}
}

// WithID fixes the session id. An empty id is ignored.
func WithID(id string) Option {
	return func(o *Options) {
		if id != "" {
			o.ID = id
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnGuess registers a guess hook. Hooks from repeated options are chained
// in order.
func WithOnGuess(fn func(GuessEvent)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnGuess
		o.OnGuess = func(e GuessEvent) { prev(e); fn(e) }
	}
}

// WithOnPhaseChange registers a phase hook. Hooks from repeated options are
// chained in order.
func WithOnPhaseChange(fn func(from, to Phase)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnPhaseChange
		o.OnPhaseChange = func(from, to Phase) { prev(from, to); fn(from, to) }
	}
}
