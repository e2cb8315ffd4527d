package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/riskcheck/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "riskcheck",
	Short: "AI development readiness self-assessment",
	Long:  "RiskCheck — terminal self-assessment of responsible-AI controls in your development process: 8 questions, 4 categories, a risk classification and concrete recommendations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}
