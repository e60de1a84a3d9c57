package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/structbench/perf"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time every catalogued operation across growing input sizes",
	Long: `Bench runs the full benchmark catalog — fourteen operations in their
worst-case configurations — at each configured input size, prints the
timing report, and derives growth ratios for the traversal-bound
operations so the observed pattern can be read off directly.

Sizes and iteration count come from --sizes / --iterations, a
structbench.yaml file, or STRUCTBENCH_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := runSweep(cmd)
		if err != nil {
			return err
		}

		cmd.Println(suite.Report())
		printGrowthAnalysis(cmd, suite)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

// runSweep executes the configured benchmark sweep and echoes the
// parameters so a saved transcript is self-describing.
func runSweep(cmd *cobra.Command) (*perf.Suite, error) {
	sizes := benchSizes()
	iterations := benchIterations()

	cmd.Println(titleStyle.Render("BENCHMARK SWEEP"))
	cmd.Printf("%s %v\n", labelStyle.Render("sizes:"), sizes)
	cmd.Printf("%s %d\n\n", labelStyle.Render("iterations:"), iterations)

	suite, err := perf.NewTester(perf.WithIterations(iterations)).RunAll(sizes)
	if err != nil {
		return nil, fmt.Errorf("benchmark sweep: %w", err)
	}

	return suite, nil
}

// printGrowthAnalysis renders consecutive-pair growth ratios for each
// benchmark with at least two measured sizes. The classification is a
// heuristic reading of noisy wall-clock data, flagged as such.
func printGrowthAnalysis(cmd *cobra.Command, suite *perf.Suite) {
	cmd.Println(titleStyle.Render("GROWTH ANALYSIS"))
	cmd.Println(labelStyle.Render("How did time scale when the input grew? Classification is a"))
	cmd.Println(labelStyle.Render("heuristic: constant factors and timer noise can blur the bands."))
	cmd.Println()

	for _, name := range suite.Names() {
		ratios := suite.GrowthRatios(name)
		if len(ratios) == 0 {
			continue
		}

		cmd.Println(sectionStyle.Render(strings.ToUpper(strings.ReplaceAll(name, "_", " "))))
		for _, r := range ratios {
			line := "  " + r.String()
			if strings.HasPrefix(r.ImpliedComplexity, "ratio=") {
				cmd.Println(warnStyle.Render(line))
			} else {
				cmd.Println(valueStyle.Render(line))
			}
		}
		cmd.Println()
	}
}
