// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/pathfind"
	"github.com/katalvlaran/borderpath/resolve"
)

func newPuzzleCmd(a *app) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Generate one puzzle and print every answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := a.loadAtlas()
			if err != nil {
				return err
			}
			gen, err := a.generator(at, a.seed(seed))
			if err != nil {
				return err
			}
			p, err := gen.Generate()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s → %s",
				at.DisplayName(p.Start), at.DisplayName(p.End))))
			fmt.Fprintf(out, "%d nodes, %d shortest %s (attempt %d)\n",
				p.Length(), p.Paths.Len(), plural(p.Paths.Len(), "path"), p.Attempts)
			printPaths(out, at, p.Paths)

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0: config value, then clock)")

	return cmd
}

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths FROM TO",
		Short: "Print every shortest border path between two countries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := a.loadAtlas()
			if err != nil {
				return err
			}
			tbl, err := resolve.FromAtlas(at)
			if err != nil {
				a.log.Warn("ambiguous names in atlas", "error", err)
			}

			var ends [2]atlas.Node
			for i, text := range args {
				n, ok := tbl.Resolve(text)
				if !ok {
					return fmt.Errorf("unknown country %q", text)
				}
				ends[i] = n
			}

			ps, err := pathfind.EnumerateShortestPaths(at.Graph(), ends[0], ends[1],
				pathfind.WithMaxPaths(a.cfg.Puzzle.MaxPaths))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			from, to := at.DisplayName(ends[0]), at.DisplayName(ends[1])
			if ps.Empty() {
				fmt.Fprintf(out, "no route from %s to %s\n", from, to)
				return nil
			}
			fmt.Fprintf(out, "%d shortest %s of %d nodes from %s to %s\n",
				ps.Len(), plural(ps.Len(), "path"), ps.NodeCount(), from, to)
			printPaths(out, at, ps)

			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check an atlas file for schema, symmetry and naming errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Atlas = args[0]
			}
			at, err := a.loadAtlas()
			if err != nil {
				return err
			}
			if _, err = resolve.FromAtlas(at); err != nil {
				return fmt.Errorf("atlas %s: %w", at.Name(), err)
			}

			g := at.Graph()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s: %d entities, %d borders, %d excluded, %d eligible, %d %s\n",
				at.Name(), g.Len(), g.EdgeCount(), len(at.Excluded()), len(at.Eligible()),
				len(g.Components()), plural(len(g.Components()), "region"))

			return nil
		},
	}
}

func printPaths(w io.Writer, at *atlas.Atlas, ps *pathfind.PathSet) {
	for _, p := range ps.Paths {
		fmt.Fprintln(w, pathStyle.Render(namedPath(at, p)))
	}
	if ps.Truncated {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("(stopped after %d paths)", ps.Len())))
	}
}
