package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskcheck/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions and their IDs",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, cat := range catalog.Categories() {
			fmt.Fprintf(out, "%s\n", cat.Name)
			for _, q := range catalog.QuestionsFor(cat.ID) {
				fmt.Fprintf(out, "  [%s] %s\n", q.ID, q.Prompt)
				for _, opt := range q.Options {
					fmt.Fprintf(out, "      %d: %s\n", opt.Risk, opt.Label)
				}
			}
			fmt.Fprintln(out)
		}
	},
}
