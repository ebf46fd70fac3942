// Package borderpath is a puzzle engine for a geography deduction game: two
// countries are picked so that the shortest chain of land borders between
// them has a target length, and the player names the countries in between.
//
// The module is organized leaves first:
//
//	atlas/           immutable ordered adjacency Graph, NodeSet, validation,
//	                 YAML/JSON atlas files, embedded Americas demo, fixtures
//	resolve/         guess text → Node, case- and accent-insensitive
//	pathfind/        BFS distances and enumeration of every shortest path
//	puzzle/          seeded endpoint sampler accepting paths in a length band
//	game/            Session state machine: guesses, narrowing, win, reveal
//	metrics/         Prometheus counters fed by puzzle and game hooks
//	config/          YAML configuration with validation
//	cmd/borderpath/  CLI: play, puzzle, paths, validate
//
// Quick ASCII example, the diamond fixture:
//
//	    A───B
//	    │   │
//	    C───D
//
// A → D has two shortest paths, A-B-D and A-C-D. Guessing B alone wins,
// because it completes A-B-D.
package borderpath
