// Command chemgine is a small harness over the chemgine library: it
// builds a default Atmosphere and Reactor from Go literals and runs
// one of a handful of named scenarios, printing per-tick layer state.
// It is not a parser or a data-file loader (spec.md §1) — every
// molecule and reaction it exercises is a Go literal wired through
// datastore/staticstore.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chemgine/chemgine/quantity"
)

func standardPressure() quantity.Quantity[quantity.Pascal] {
	return quantity.TorrToPascal(quantity.New[quantity.Torr](760))
}

var scenarios = map[string]func(){
	"water-heating":     runWaterHeating,
	"overflow":          runOverflow,
	"aggregation-change": runAggregationChange,
	"forwarding":        runForwarding,
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chemgine",
		Short: "Run a chemgine mixture-simulation demo scenario.",
		Long: `chemgine is a demo harness over the mixture simulation kernel:
it builds a Reactor inside a default Atmosphere from Go literals and
runs one of the named scenarios, printing layer state after every
tick.`,
		DisableAutoGenTag: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run a named scenario (water-heating, overflow, aggregation-change, forwarding).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := scenarios[args[0]]
			if !ok {
				return fmt.Errorf("unknown scenario %q; choose one of water-heating, overflow, aggregation-change, forwarding", args[0])
			}
			fn()
			return nil
		},
		DisableAutoGenTag: true,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios.",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range []string{"water-heating", "overflow", "aggregation-change", "forwarding"} {
				fmt.Println(name)
			}
		},
		DisableAutoGenTag: true,
	}

	root.AddCommand(runCmd, listCmd)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
