// Package main implements sogdump, a debugging front-end for the product
// package: it wires one of the built-in demo fixtures (package demo)
// through a chosen product variant and walks the resulting on-the-fly
// graph breadth-first to a depth bound, printing every reached state and
// transition. It is an exerciser for the product facade and the cursors'
// determinism — not the full LTL front-end, which stays out of scope (no
// LTL parsing, no translation, no emptiness check).
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanntm/its-ltl-core/internal/demo"
	"github.com/yanntm/its-ltl-core/product"
	"github.com/yanntm/its-ltl-core/sccmap"
)

var (
	flagVariant  string
	flagScenario string
	flagDepth    int
	flagNoSCC    bool
)

var rootCmd = &cobra.Command{
	Use:   "sogdump",
	Short: "walk a symbolic observation-graph product and print its states",
	Long: `sogdump builds the on-the-fly product of a demo Büchi automaton with a
demo system model for one of the SOG/SLOG/DSOG variants, then enumerates
reachable product states breadth-first up to a depth bound, printing each
state and each emitted transition.`,
	RunE: runDump,
}

func init() {
	rootCmd.Flags().StringVarP(&flagVariant, "variant", "v", "dsog", "product variant: sog, slog or dsog")
	rootCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "live", "demo scenario: "+strings.Join(scenarioNames(), ", "))
	rootCmd.Flags().IntVarP(&flagDepth, "depth", "d", 8, "maximum exploration depth")
	rootCmd.Flags().BoolVar(&flagNoSCC, "no-scc-reduction", false, "disable SCC-based AP narrowing (DSOG only)")
}

func scenarioNames() []string {
	names := make([]string, 0, len(demo.Fixtures()))
	for name := range demo.Fixtures() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseVariant(s string) (product.Variant, error) {
	switch strings.ToLower(s) {
	case "sog":
		return product.PlainSOG, nil
	case "slog":
		return product.SLOG, nil
	case "dsog":
		return product.DSOG, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want sog, slog or dsog)", s)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	variant, err := parseVariant(flagVariant)
	if err != nil {
		return err
	}

	mk, ok := demo.Fixtures()[flagScenario]
	if !ok {
		return fmt.Errorf("unknown scenario %q (want one of %s)", flagScenario, strings.Join(scenarioNames(), ", "))
	}
	fx := mk()

	opts := []product.Option{}
	if flagNoSCC {
		opts = append(opts, product.WithSCCBuildMode(sccmap.Off))
	}
	g, err := product.New(fx.Aut, fx.Model, variant, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "variant %s, scenario %s\n", variant, flagScenario)
	walk(cmd, g)
	return nil
}

// walk explores g breadth-first from the initial state up to flagDepth,
// deduplicating via the states' own hash/compare identity, printing the
// initial state and every transition as it is emitted (each transition line
// renders both of its end states).
func walk(cmd *cobra.Command, g *product.Graph) {
	type entry struct {
		state product.State
		depth int
	}
	seen := map[uint64][]product.State{}
	visited := func(s product.State) bool {
		for _, o := range seen[s.Hash()] {
			if o.Compare(s) == 0 {
				return true
			}
		}
		return false
	}
	mark := func(s product.State) { seen[s.Hash()] = append(seen[s.Hash()], s) }

	init := g.InitialState()
	queue := []entry{{state: init, depth: 0}}
	mark(init)
	fmt.Fprintf(cmd.OutOrStdout(), "initial: %s\n", g.FormatState(init))

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= flagDepth {
			continue
		}

		c := g.Successors(cur.state)
		for c.First(); !c.Done(); c.Next() {
			dest, cond, acc := c.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "  %s --[%s / acc=%v]--> %s\n",
				g.FormatState(cur.state), cond, !acc.Empty(), g.FormatState(dest))
			if !visited(dest) {
				mark(dest)
				queue = append(queue, entry{state: dest, depth: cur.depth + 1})
			} else {
				dest.Release()
			}
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
