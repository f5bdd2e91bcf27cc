package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/ui/theme"
	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Show the next training scenario",
	Long:  "Show one scenario not yet seen in this profile. Use 'train' to answer interactively.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := difficultyFlag(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		reveal, _ := cmd.Flags().GetBool("reveal")

		return withApp(cmd, func(a *app) error {
			sc, err := a.Session().NextScenario(cmd.Context(), d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, sc)
			}
			printScenario(out, sc)
			if reveal {
				printAnswer(out, sc.Label, sc.Explanation, sc.Indicators())
			}
			return nil
		})
	},
}

func printAnswer(w io.Writer, label content.Label, explanation string, indicators []string) {
	fmt.Fprintln(w, theme.Section.Render("Answer: "+strings.ToUpper(string(label))))
	fmt.Fprintln(w, theme.Body.Render(explanation))
	fmt.Fprintln(w, bullets(indicators))
}

func difficultyFlag(cmd *cobra.Command) (content.Difficulty, error) {
	s, _ := cmd.Flags().GetString("difficulty")
	return content.ParseDifficulty(s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	scenarioCmd.Flags().StringP("difficulty", "d", "", "easy, medium or hard (default: any)")
	scenarioCmd.Flags().Bool("json", false, "Print as JSON, answer included")
	scenarioCmd.Flags().Bool("reveal", false, "Also print the answer and explanation")
}
