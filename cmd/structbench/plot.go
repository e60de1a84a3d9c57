package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/structbench/viz"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Benchmark everything and render growth charts to PNG",
	Long: `Plot runs the same sweep as bench and then renders one growth chart
per benchmark (mean time vs input size, with std-dev error bars) plus
cross-structure comparison overlays for search and insert, into the
--output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := runSweep(cmd)
		if err != nil {
			return err
		}

		written, err := viz.SaveAll(suite.PlotData(), outputDir())
		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render("CHARTS"))
		for _, path := range written {
			cmd.Println(okStyle.Render("  wrote " + path))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
}
