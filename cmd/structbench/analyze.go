package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/structbench/complexity"
)

var (
	analyzeCompare string
	analyzePredict int
	analyzeVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [structure]",
	Short: "Print theoretical Big-O complexity tables",
	Long: `Analyze prints best/average/worst-case time complexity and space
complexity for every operation of the chosen structure, with a dynamic
array shown alongside for contrast.

With no argument all three structures are printed. --compare overlays
one operation kind (insert, delete, search) across structures, and
--predict N estimates concrete operation counts at input size N.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeCompare != "" {
			return runCompare(cmd, analyzeCompare)
		}

		targets := complexity.Structures()
		if len(args) == 1 {
			targets = []string{args[0]}
		}
		for _, structure := range targets {
			if err := printStructure(cmd, structure); err != nil {
				return err
			}
		}
		printArrayReference(cmd)

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompare, "compare", "", "compare one operation kind across structures")
	analyzeCmd.Flags().IntVar(&analyzePredict, "predict", 0, "estimate operation counts at this input size")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "include prose explanations")
	rootCmd.AddCommand(analyzeCmd)
}

// printStructure renders one structure's full complexity table.
func printStructure(cmd *cobra.Command, structure string) error {
	analyses, err := complexity.Operations(structure)
	if err != nil {
		return err
	}

	cmd.Println(titleStyle.Render(strings.ToUpper(strings.ReplaceAll(structure, "_", " "))))
	cmd.Printf("%-18s %-10s %-10s %-10s %-10s\n", "OPERATION", "BEST", "AVERAGE", "WORST", "SPACE")
	cmd.Println(strings.Repeat("-", 60))
	for _, a := range analyses {
		cmd.Printf("%-18s %-10s %-10s %-10s %-10s\n", a.Operation, a.Best, a.Average, a.Worst, a.Space)
		if analyzeVerbose {
			cmd.Println(labelStyle.Render("  " + a.Explanation))
		}
	}
	cmd.Println()

	if analyzePredict > 0 {
		if err := printPredictions(cmd, structure, analyses); err != nil {
			return err
		}
	}

	return nil
}

// printPredictions renders estimated operation counts at --predict N.
func printPredictions(cmd *cobra.Command, structure string, analyses []complexity.Analysis) error {
	cmd.Println(sectionStyle.Render(fmt.Sprintf("Estimated operations at n=%d", analyzePredict)))
	for _, a := range analyses {
		p, err := complexity.Predict(structure, a.Operation, analyzePredict)
		if err != nil {
			return err
		}
		cmd.Printf("%-18s best %-12d avg %-12d worst %-12d\n",
			p.Operation, p.Best.Ops, p.Average.Ops, p.Worst.Ops)
	}
	cmd.Println()

	return nil
}

// printArrayReference renders the dynamic-array contrast table.
func printArrayReference(cmd *cobra.Command) {
	cmd.Println(sectionStyle.Render("DYNAMIC ARRAY (reference)"))
	cmd.Printf("%-18s %-10s %-10s %-10s %-10s\n", "OPERATION", "BEST", "AVERAGE", "WORST", "SPACE")
	cmd.Println(strings.Repeat("-", 60))
	for _, a := range complexity.Array() {
		cmd.Printf("%-18s %-10s %-10s %-10s %-10s\n", a.Operation, a.Best, a.Average, a.Worst, a.Space)
	}
	cmd.Println()
}

// runCompare overlays one operation kind across the three structures.
func runCompare(cmd *cobra.Command, operation string) error {
	matches := complexity.Compare(operation)
	if len(matches) == 0 {
		return fmt.Errorf("no structure implements operation %q", operation)
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("COMPARISON: %s", strings.ToUpper(operation))))
	cmd.Printf("%-14s %-18s %-10s %-10s %-10s\n", "STRUCTURE", "OPERATION", "BEST", "AVERAGE", "WORST")
	cmd.Println(strings.Repeat("-", 64))
	for _, structure := range complexity.Structures() {
		a, ok := matches[structure]
		if !ok {
			continue
		}
		cmd.Printf("%-14s %-18s %-10s %-10s %-10s\n", structure, a.Operation, a.Best, a.Average, a.Worst)
		if analyzeVerbose {
			cmd.Println(labelStyle.Render("  " + a.Explanation))
		}
	}
	cmd.Println()

	return nil
}
