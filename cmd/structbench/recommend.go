package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/structbench/complexity"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <use case description>",
	Short: "Suggest a data structure for a described use case",
	Long: `Recommend matches keywords in a free-text use case description against
the access patterns of the three structures and prints ranked
suggestions with reasons. A description matching nothing gets general
guidance for all three.`,
	Example: `  structbench recommend undo history for a text editor
  structbench recommend "buffer incoming requests in arrival order"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		useCase := strings.Join(args, " ")
		recs := complexity.Recommend(useCase)

		cmd.Println(titleStyle.Render("RECOMMENDATIONS"))
		cmd.Printf("%s %q\n\n", labelStyle.Render("use case:"), useCase)
		for i, r := range recs {
			name := strings.ToUpper(strings.ReplaceAll(r.Structure, "_", " "))
			cmd.Printf("%d. %s\n", i+1, sectionStyle.Render(name))
			cmd.Println(valueStyle.Render("   " + r.Reason))
		}
		cmd.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}
