package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/riskcheck/internal/report"
	"github.com/abhisek/riskcheck/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answers file without the interactive UI",
	Long: `Score reads a JSON answers file and prints the assessment report.

The file maps every question ID to its risk value (0, 1 or 2):

  {"org": "Acme", "answers": {"governance-1": 0, ...}}

Use "riskcheck questions" to list the question IDs. Pass "-" to read
from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("input")
		asJSON, _ := cmd.Flags().GetBool("json")

		var raw []byte
		var err error
		if path == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(path)
		}
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}

		af, err := report.ParseAnswerFile(raw)
		if err != nil {
			return err
		}

		res, err := scoring.Score(af.Answers)
		if err != nil {
			return err
		}

		meta := report.Meta{
			SessionID:   uuid.New().String(),
			Org:         af.Org,
			GeneratedAt: time.Now(),
		}

		if asJSON {
			out, err := report.JSON(meta, res)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), report.Text(meta, res))
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringP("input", "i", "-", "Answers file path, or - for stdin")
	scoreCmd.Flags().Bool("json", false, "Emit the report as JSON")
}
